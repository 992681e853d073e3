package pages

import (
	"net/http"
	"net/url"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/assistant"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

func identity(c *gin.Context) *auth.Identity {
	id, _ := auth.GetIdentity(c)
	return id
}

// renders a page that needs nothing beyond the optional signed-in user
func Static(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, View{Page: page, User: identity(c)})
	}
}

// signed-in users go straight to their callback; others get the sign-in options
func Login(oauth *auth.OAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		callback := auth.CallbackFromQuery(c.Request.URL.Query())

		if _, signedIn := auth.GetUserID(c); signedIn {
			c.Redirect(http.StatusTemporaryRedirect, callback)
			return
		}

		data := LoginData{CallbackURL: callback}

		for _, provider := range []string{"google", "github"} {
			if !oauth.Enabled(provider) {
				continue
			}

			if data.Providers == nil {
				data.Providers = make(map[string]string)
			}
			data.Providers[provider] = "/api/v1/auth/" + provider + "?" + url.Values{"callbackUrl": {callback}}.Encode()
		}

		c.JSON(http.StatusOK, View{Page: "login", Data: data})
	}
}

func Logout(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c.Writer, secureCookies)
		c.Redirect(http.StatusTemporaryRedirect, auth.LoginPath)
	}
}

// the wizard is only shown once; completed users go to the dashboard
func Onboarding(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)

		if svc.OnboardingStatus(c.Request.Context(), userID).Completed {
			c.Redirect(http.StatusTemporaryRedirect, auth.DefaultCallbackPath)
			return
		}

		c.JSON(http.StatusOK, View{
			Page: "onboarding",
			User: identity(c),
			Data: OnboardingData{
				Professions: profiles.Professions,
				Fields:      profiles.Fields,
				Frequencies: profiles.Frequencies,
			},
		})
	}
}

func Dashboard(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		data := svc.ProfileData(c.Request.Context(), userID)

		c.JSON(http.StatusOK, View{
			Page: "dashboard",
			User: identity(c),
			Data: DashboardData{Field: data.Onboarding.Field, Stats: data.Stats},
		})
	}
}

func Newsfeed(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		feed := svc.NewsfeedForUser(c.Request.Context(), userID)

		c.JSON(http.StatusOK, View{
			Page: "newsfeed",
			User: identity(c),
			Data: NewsfeedData{
				Niche:      feed.Niche,
				FieldLabel: fieldLabel(feed.Niche),
				Papers:     feed.Papers,
			},
		})
	}
}

func Profile(svc *profiles.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		data := svc.ProfileData(c.Request.Context(), userID)

		view := ProfileData{Profile: data.Document}
		if data.Err != nil {
			view.Error = "Failed to load profile data"
		}

		c.JSON(http.StatusOK, View{Page: "profile", User: identity(c), Data: view})
	}
}

func CaseAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, View{
			Page: "caseanalysis",
			User: identity(c),
			Data: CaseAnalysisData{Specialties: profiles.Fields},
		})
	}
}

func fieldLabel(id string) string {
	for _, f := range profiles.Fields {
		if f.ID == id {
			return f.Name
		}
	}
	return "General Medicine"
}
