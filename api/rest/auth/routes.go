package auth

import (
	"codeberg.org/medlit/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// everything the auth routes need; OAuth and Local are nil in firebase mode
type Deps struct {
	Provider      auth.Provider
	Gate          *auth.Gate
	OAuth         *auth.OAuth
	Local         *auth.LocalProvider
	SecureCookies bool
}

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, deps Deps) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/session", CreateSessionHandler(deps.Provider, deps.SecureCookies))
		authGroup.POST("/logout", LogoutHandler(deps.SecureCookies))
		authGroup.GET("/me", deps.Gate.APIMiddleware(), GetCurrentUserHandler())
		authGroup.POST("/revoke", deps.Gate.APIMiddleware(), RevokeHandler(deps.Provider, deps.SecureCookies))

		if deps.OAuth != nil && deps.Local != nil {
			authGroup.GET("/:provider", BeginAuthHandler(deps.OAuth))
			authGroup.GET("/:provider/callback", CallbackHandler(deps.OAuth, deps.Local, deps.SecureCookies))
		}
	}
}
