package config

// identity backends
const (
	AuthModeFirebase = "firebase"
	AuthModeLocal    = "local"
)

// profile document stores
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string

	// base URL of the external research API (newsfeed, analyze-case, rag-query)
	APIBaseURL string

	AuthMode                  string
	FirebaseProjectID         string
	FirebaseServiceAccountKey string
	JWTSecret                 string
	SessionSecret             string

	ProfileStore string
	DatabaseURL  string
	RedisURL     string

	CORSAllowedOrigins []string
	RateLimit          string

	OAuth OAuthConfig
}

// client credentials for local-mode sign-in
type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// reports whether any Firebase-backed component is configured
func (c *Config) UsesFirebase() bool {
	return c.AuthMode == AuthModeFirebase || c.ProfileStore == StoreFirestore
}
