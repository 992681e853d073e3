package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// no session cookie on the request
	ErrNoSession = errors.New("no session cookie")

	// the cookie failed signature, expiry or format checks
	ErrInvalidSession = errors.New("invalid session")

	// the user's sessions were revoked after this cookie was issued
	ErrSessionRevoked = errors.New("session revoked")

	// the identity backend cannot perform the operation
	ErrUnsupported = errors.New("operation not supported by identity provider")
)

// values of Claims.TokenUse
const (
	tokenUseID      = "id"
	tokenUseSession = "session"
)

// gin context keys set by the gate
const (
	ContextUserID   = "user_id"
	ContextIdentity = "identity"
)

// represents JWT claims of locally issued tokens
type Claims struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	TokenUse      string `json:"token_use"`
	jwt.RegisteredClaims
}

// the verified holder of a session credential
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// Provider is the identity backend behind the session gate.
// Firebase in production, signed local tokens for development and self-hosting.
type Provider interface {
	// exchanges a short-lived ID token for a session credential valid for ttl
	CreateSession(ctx context.Context, idToken string, ttl time.Duration) (string, error)

	// validates a session credential, consulting the revocation state when checkRevoked is set
	VerifySession(ctx context.Context, cookie string, checkRevoked bool) (*Identity, error)

	// invalidates every session issued to the user so far
	RevokeSessions(ctx context.Context, uid string) error

	UpdateDisplayName(ctx context.Context, uid, name string) error
}

// records the instant before which a user's sessions are no longer valid
type RevocationStore interface {
	RevokeAll(ctx context.Context, uid string, at time.Time) error

	// returns the zero time when the user never revoked
	ValidAfter(ctx context.Context, uid string) (time.Time, error)
}
