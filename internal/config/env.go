package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultBaseURL     = "http://localhost:8080"
	defaultAPIBaseURL  = "http://localhost:8000"
	defaultCORSOrigins = "http://localhost:3000"
	defaultRateLimit   = "60-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	cfg := &Config{
		Environment:               getenv("ENVIRONMENT", "development"),
		Port:                      getenv("PORT", defaultPort),
		BaseURL:                   strings.TrimRight(getenv("BASE_URL", defaultBaseURL), "/"),
		APIBaseURL:                strings.TrimRight(getenv("API_BASE_URL", defaultAPIBaseURL), "/"),
		AuthMode:                  strings.ToLower(getenv("AUTH_MODE", AuthModeFirebase)),
		FirebaseProjectID:         os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseServiceAccountKey: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		SessionSecret:             os.Getenv("SESSION_SECRET"),
		ProfileStore:              strings.ToLower(getenv("PROFILE_STORE", StoreFirestore)),
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		RedisURL:                  os.Getenv("REDIS_URL"),
		CORSAllowedOrigins:        splitList(getenv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		RateLimit:                 getenv("RATE_LIMIT", defaultRateLimit),
		OAuth: OAuthConfig{
			GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
			GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AuthMode {
	case AuthModeFirebase, AuthModeLocal:
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeFirebase, AuthModeLocal, c.AuthMode)
	}

	switch c.ProfileStore {
	case StoreFirestore, StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("PROFILE_STORE must be one of %q, %q, %q, got %q",
			StoreFirestore, StorePostgres, StoreMemory, c.ProfileStore)
	}

	if c.UsesFirebase() {
		if c.FirebaseServiceAccountKey == "" {
			return fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY environment variable is required")
		}

		if c.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID environment variable is required")
		}
	}

	if c.AuthMode == AuthModeLocal {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET environment variable is required")
		}

		if c.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET environment variable is required")
		}
	}

	if c.ProfileStore == StorePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if c.ProfileStore == StoreMemory && c.IsProduction() {
		return fmt.Errorf("PROFILE_STORE=memory is not allowed in production")
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
