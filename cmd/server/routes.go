package main

import (
	"context"

	"codeberg.org/medlit/server/api/pages"
	"codeberg.org/medlit/server/api/rest/assistant"
	"codeberg.org/medlit/server/api/rest/auth"
	"codeberg.org/medlit/server/api/rest/health"
	"codeberg.org/medlit/server/api/rest/onboarding"
	"codeberg.org/medlit/server/api/rest/profile"
	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// sets up all page and API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	svc := server.services
	secure := server.config.IsProduction()

	router.Use(RequestIDMiddleware())
	router.Use(logger.Middleware())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler(server.healthChecks()...))

	pages.RegisterRoutes(router, pages.Deps{
		Gate:          svc.Gate,
		Profiles:      svc.Profiles,
		Assistant:     svc.Assistant,
		OAuth:         svc.OAuth,
		SecureCookies: secure,
	})

	v1 := router.Group("/api/v1")
	v1.Use(svc.Gate.Optional(), ratelimit.Middleware(svc.Limiter))

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, auth.Deps{
			Provider:      svc.Provider,
			Gate:          svc.Gate,
			OAuth:         svc.OAuth,
			Local:         svc.Local,
			SecureCookies: secure,
		})
		onboarding.RegisterRoutes(v1, svc.Gate, svc.Profiles)
		profile.RegisterRoutes(v1, svc.Gate, svc.Provider, svc.Profiles)
		assistant.RegisterRoutes(v1, svc.Gate, onboarding.RequireOnboarded(svc.Profiles), svc.Assistant)
	}
}

func (s *Server) healthChecks() []health.Check {
	var checks []health.Check

	if s.backends.DB != nil {
		checks = append(checks, health.Check{Name: "postgres", Ping: s.backends.DB.Ping})
	}

	if s.backends.Redis != nil {
		redis := s.backends.Redis
		checks = append(checks, health.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		}})
	}

	return checks
}
