package main

import (
	"fmt"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/config"
	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/internal/ratelimit"
	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/assistant"
	"codeberg.org/medlit/server/medlit/profiles"
)

// creates the identity, profile and research services on top of the open backends
func InitializeServices(cfg *config.Config, b *Backends) (*Services, error) {
	s := &Services{}

	switch cfg.AuthMode {
	case config.AuthModeFirebase:
		s.Provider = b.Firebase

	case config.AuthModeLocal:
		var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()
		if b.Redis != nil {
			revocations = auth.NewRedisRevocationStore(b.Redis, auth.SessionTTL)
		}

		local, err := auth.NewLocalProvider(cfg.JWTSecret, revocations)
		if err != nil {
			return nil, err
		}

		oauth, err := auth.InitializeProviders(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OAuth providers: %w", err)
		}

		s.Provider = local
		s.Local = local
		s.OAuth = oauth

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}

	var store profiles.Store

	switch cfg.ProfileStore {
	case config.StoreFirestore:
		store = profiles.NewFirestoreStore(b.Firestore)
	case config.StorePostgres:
		store = profiles.NewPostgresStore(b.DB)
	case config.StoreMemory:
		logger.Warn("using in-memory profile store, profiles are lost on restart")
		store = profiles.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown profile store %q", cfg.ProfileStore)
	}

	limiter, err := ratelimit.New(cfg.RateLimit, b.Redis)
	if err != nil {
		return nil, err
	}

	s.Gate = auth.NewGate(s.Provider, cfg.IsProduction())
	s.Profiles = profiles.NewService(store)
	s.Assistant = assistant.NewService(research.NewClient(cfg.APIBaseURL), s.Profiles)
	s.Limiter = limiter

	logger.Info("services initialized",
		"auth_mode", cfg.AuthMode,
		"profile_store", cfg.ProfileStore,
		"api_base_url", cfg.APIBaseURL,
		"rate_limit", cfg.RateLimit,
	)

	return s, nil
}
