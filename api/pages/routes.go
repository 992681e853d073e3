package pages

import (
	"strings"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/medlit/assistant"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

// everything the page routes need; OAuth is nil in firebase mode
type Deps struct {
	Gate          *auth.Gate
	Profiles      *profiles.Service
	Assistant     *assistant.Service
	OAuth         *auth.OAuth
	SecureCookies bool
}

// registers the page routes behind the session gate; unmatched paths are
// gated too so an unknown page never answers before the session check
func RegisterRoutes(router *gin.Engine, deps Deps) {
	public := router.Group("")
	public.Use(deps.Gate.Optional())
	{
		public.GET("/", Static("home"))
		public.GET("/login", Login(deps.OAuth))
		public.GET("/signup", Static("signup"))
		public.GET("/demo", Static("demo"))
		public.GET("/forgot-password", Static("forgot-password"))
		public.GET(auth.LogoutPath, Logout(deps.SecureCookies))
	}

	gated := router.Group("")
	gated.Use(deps.Gate.Middleware())

	gated.GET(onboardingPath, Onboarding(deps.Profiles))

	onboarded := gated.Group("")
	onboarded.Use(RequireOnboarding(deps.Profiles))
	{
		onboarded.GET("/dashboard", Dashboard(deps.Profiles))
		onboarded.GET("/newsfeed", Newsfeed(deps.Assistant))
		onboarded.GET("/caseanalysis", CaseAnalysis())
		onboarded.GET("/profile", Profile(deps.Profiles))
		onboarded.GET("/research", Static("research"))
		onboarded.GET("/search", Static("search"))
	}

	router.NoRoute(gateUnlessAPI(deps.Gate), NotFound)
}

// API paths answer with JSON and are left to the API gate
func gateUnlessAPI(gate *auth.Gate) gin.HandlerFunc {
	pageGate := gate.Middleware()

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		pageGate(c)
	}
}

func NotFound(c *gin.Context) {
	errors.NotFound(c, "page")
}
