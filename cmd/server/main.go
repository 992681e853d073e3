package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/medlit/server/internal/config"
	"codeberg.org/medlit/server/internal/logger"
)

// @title Medlit API
// @version 1.0
// @description Session-gated front end for a medical research assistant
// @description
// @description Features:
// @description - Personalized newsfeed of recent papers for the user's specialty
// @description - Clinical case analysis backed by the literature
// @description - Free-text research questions with cited sources
// @description - Onboarding questionnaire and profile statistics

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
// @description HTTP-only session cookie created by POST /api/v1/auth/session

func main() {
	logger.Info("starting medlit server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// research API calls may take up to a minute
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.backends.Close()

	logger.Info("server stopped")
}
