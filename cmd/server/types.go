package main

import (
	"cloud.google.com/go/firestore"
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/config"
	"codeberg.org/medlit/server/medlit/assistant"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	backends *Backends
	services *Services
	router   *gin.Engine
}

// connections to external systems; unused ones are nil
type Backends struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Firestore *firestore.Client
	Firebase  auth.Provider
}

// holds the identity, profile and research services shared by the handlers
type Services struct {
	Provider  auth.Provider
	Local     *auth.LocalProvider
	OAuth     *auth.OAuth
	Gate      *auth.Gate
	Profiles  *profiles.Service
	Assistant *assistant.Service
	Limiter   *limiter.Limiter
}
