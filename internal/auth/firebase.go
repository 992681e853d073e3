package auth

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/medlit/server/internal/logger"
	fbauth "firebase.google.com/go/v4/auth"
)

// the Admin SDK calls the provider makes; satisfied by *fbauth.Client
type FirebaseClient interface {
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*fbauth.Token, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	UpdateUser(ctx context.Context, uid string, user *fbauth.UserToUpdate) (*fbauth.UserRecord, error)
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
}

// verifies Firebase session cookies through the Admin SDK
type FirebaseProvider struct {
	client FirebaseClient
}

func NewFirebaseProvider(client FirebaseClient) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) CreateSession(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	if idToken == "" {
		return "", fmt.Errorf("%w: missing id token", ErrInvalidSession)
	}

	cookie, err := p.client.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return cookie, nil
}

func (p *FirebaseProvider) VerifySession(ctx context.Context, cookie string, checkRevoked bool) (*Identity, error) {
	if cookie == "" {
		return nil, ErrNoSession
	}

	var (
		token *fbauth.Token
		err   error
	)

	if checkRevoked {
		token, err = p.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	} else {
		token, err = p.client.VerifySessionCookie(ctx, cookie)
	}

	if err != nil {
		if fbauth.IsSessionCookieRevoked(err) || fbauth.IsUserDisabled(err) {
			return nil, fmt.Errorf("%w: %v", ErrSessionRevoked, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	// cookie claims are frozen at sign-in; the user record carries profile edits
	user, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
		}

		logger.Warn("failed to load firebase user, using session claims",
			"user_id", token.UID,
			"error", err,
		)
		identity := identityFromFirebaseToken(token)
		return &identity, nil
	}

	identity := identityFromUserRecord(token.UID, user)
	return &identity, nil
}

func (p *FirebaseProvider) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return nil
}

func (p *FirebaseProvider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	update := (&fbauth.UserToUpdate{}).DisplayName(name)

	if _, err := p.client.UpdateUser(ctx, uid, update); err != nil {
		return fmt.Errorf("failed to update display name: %w", err)
	}

	return nil
}

func identityFromUserRecord(uid string, user *fbauth.UserRecord) Identity {
	identity := Identity{UID: uid, EmailVerified: user.EmailVerified}

	if user.UserInfo != nil {
		identity.Email = user.Email
		identity.DisplayName = user.DisplayName
		identity.PhotoURL = user.PhotoURL
	}

	return identity
}

// session cookies carry the claims of the ID token they were minted from
func identityFromFirebaseToken(token *fbauth.Token) Identity {
	identity := Identity{UID: token.UID}

	if v, ok := token.Claims["email"].(string); ok {
		identity.Email = v
	}

	if v, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = v
	}

	if v, ok := token.Claims["picture"].(string); ok {
		identity.PhotoURL = v
	}

	if v, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = v
	}

	return identity
}
