package profile

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, gate *auth.Gate, provider auth.Provider, svc *profiles.Service) {
	profile := rg.Group("/profile")
	profile.Use(gate.APIMiddleware())

	profile.GET("", GetProfile(svc))
	profile.PUT("", UpdateProfile(svc, provider))
}
