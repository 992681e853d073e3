package onboarding

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, gate *auth.Gate, svc *profiles.Service) {
	onboarding := rg.Group("/onboarding")
	onboarding.GET("/options", GetOptions())

	protected := onboarding.Group("")
	protected.Use(gate.APIMiddleware())
	{
		protected.GET("/status", GetStatus(svc))
		protected.POST("", Save(svc))
	}
}
