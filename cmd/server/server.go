package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/config"
	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/internal/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backends, err := openBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg, backends)
	if err != nil {
		backends.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		config:   cfg,
		backends: backends,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

func openBackends(ctx context.Context, cfg *config.Config) (*Backends, error) {
	b := &Backends{}

	if cfg.RedisURL != "" {
		client, err := storage.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		b.Redis = client
		logger.Info("redis connected")
	}

	if cfg.ProfileStore == config.StorePostgres {
		db, err := storage.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.DB = db

		if err := storage.Migrate(ctx, db); err != nil {
			b.Close()
			return nil, err
		}
		logger.Info("postgres connected, migrations applied")
	}

	if cfg.UsesFirebase() {
		app, err := firebase.NewApp(ctx,
			&firebase.Config{ProjectID: cfg.FirebaseProjectID},
			option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountKey)),
		)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
		}

		if cfg.AuthMode == config.AuthModeFirebase {
			client, err := app.Auth(ctx)
			if err != nil {
				b.Close()
				return nil, fmt.Errorf("failed to initialize firebase auth: %w", err)
			}
			b.Firebase = auth.NewFirebaseProvider(client)
		}

		if cfg.ProfileStore == config.StoreFirestore {
			client, err := app.Firestore(ctx)
			if err != nil {
				b.Close()
				return nil, fmt.Errorf("failed to initialize firestore: %w", err)
			}
			b.Firestore = client
		}

		logger.Info("firebase initialized", "project_id", cfg.FirebaseProjectID)
	}

	return b, nil
}

// closes every open connection, best-effort
func (b *Backends) Close() {
	if b.Firestore != nil {
		b.Firestore.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if b.Redis != nil {
		b.Redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if b.DB != nil {
		b.DB.Close()
	}
}
