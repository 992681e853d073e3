package assistant

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/assistant"
	"github.com/gin-gonic/gin"
)

// registers the research proxies; onboarding is required since the feed depends on it
func RegisterRoutes(rg *gin.RouterGroup, gate *auth.Gate, onboarded gin.HandlerFunc, svc *assistant.Service) {
	protected := rg.Group("")
	protected.Use(gate.APIMiddleware(), onboarded)

	protected.GET("/newsfeed", GetNewsfeed(svc))
	protected.POST("/newsfeed/read", MarkPaperRead(svc))
	protected.POST("/case-analysis", AnalyzeCase(svc))
	protected.POST("/research", Research(svc))
}
