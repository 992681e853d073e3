package auth

import (
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/medlit/server/internal/config"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
)

const (
	loginStateSession = "medlit_login"
	callbackKey       = "callback"
)

// sign-in flow state for local mode: goth providers plus a short-lived cookie store
type OAuth struct {
	store     *sessions.CookieStore
	providers map[string]bool
}

// sets up the OAuth providers that have credentials configured
func InitializeProviders(cfg *config.Config) (*OAuth, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// lax, so the cookie survives the redirect back from the provider
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   strings.HasPrefix(cfg.BaseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	var providers []goth.Provider
	enabled := make(map[string]bool)

	if cfg.OAuth.GoogleClientID != "" && cfg.OAuth.GoogleClientSecret != "" {
		providers = append(providers, google.New(
			cfg.OAuth.GoogleClientID,
			cfg.OAuth.GoogleClientSecret,
			cfg.BaseURL+"/api/v1/auth/google/callback",
			"email", "profile",
		))
		enabled["google"] = true
	}

	if cfg.OAuth.GitHubClientID != "" && cfg.OAuth.GitHubClientSecret != "" {
		providers = append(providers, github.New(
			cfg.OAuth.GitHubClientID,
			cfg.OAuth.GitHubClientSecret,
			cfg.BaseURL+"/api/v1/auth/github/callback",
			"user:email",
		))
		enabled["github"] = true
	}

	if len(providers) > 0 {
		goth.UseProviders(providers...)
	}

	return &OAuth{store: store, providers: enabled}, nil
}

func (o *OAuth) Enabled(provider string) bool {
	return o != nil && o.providers[provider]
}

// stores the post-login destination for the duration of the sign-in flow
func (o *OAuth) RememberCallback(w http.ResponseWriter, r *http.Request, callback string) error {
	session, err := o.store.Get(r, loginStateSession)
	if err != nil {
		// a stale or tampered cookie yields a fresh session, which is fine to overwrite
		session, _ = o.store.New(r, loginStateSession) //nolint:errcheck // New always returns a usable session
	}

	session.Values[callbackKey] = SafeCallback(callback)
	return session.Save(r, w)
}

// returns and forgets the remembered destination
func (o *OAuth) PopCallback(w http.ResponseWriter, r *http.Request) string {
	session, err := o.store.Get(r, loginStateSession)
	if err != nil {
		return DefaultCallbackPath
	}

	callback, _ := session.Values[callbackKey].(string)
	delete(session.Values, callbackKey)
	_ = session.Save(r, w) //nolint:errcheck // losing the cleanup only leaves a 5 minute cookie behind

	return SafeCallback(callback)
}

// maps a completed goth sign-in to a local identity
func IdentityFromGoth(user goth.User) Identity {
	name := user.Name
	if name == "" {
		name = user.NickName
	}

	return Identity{
		UID:           user.Provider + ":" + user.UserID,
		Email:         user.Email,
		DisplayName:   name,
		PhotoURL:      user.AvatarURL,
		EmailVerified: user.Email != "",
	}
}
