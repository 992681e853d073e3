package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	localIssuer = "medlit"

	// lifetime of ID tokens minted by the OAuth callback or `medctl token`
	IDTokenTTL = time.Hour
)

// issues and verifies HS256 session tokens without an external identity service
type LocalProvider struct {
	secret      []byte
	revocations RevocationStore
	now         func() time.Time
}

// creates a provider signing with secret; revocations may be nil to disable revocation checks
func NewLocalProvider(secret string, revocations RevocationStore) (*LocalProvider, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	return &LocalProvider{
		secret:      []byte(secret),
		revocations: revocations,
		now:         time.Now,
	}, nil
}

// mints a short-lived ID token that CreateSession will accept
func (p *LocalProvider) IssueIDToken(identity Identity) (string, error) {
	return p.sign(identity, tokenUseID, IDTokenTTL)
}

// mints a session token directly, used after a completed OAuth sign-in
func (p *LocalProvider) IssueSession(identity Identity, ttl time.Duration) (string, error) {
	return p.sign(identity, tokenUseSession, ttl)
}

func (p *LocalProvider) CreateSession(_ context.Context, idToken string, ttl time.Duration) (string, error) {
	claims, err := p.parse(idToken)
	if err != nil {
		return "", err
	}

	if claims.TokenUse != tokenUseID {
		return "", fmt.Errorf("%w: expected an id token", ErrInvalidSession)
	}

	return p.sign(identityFromClaims(claims), tokenUseSession, ttl)
}

func (p *LocalProvider) VerifySession(ctx context.Context, cookie string, checkRevoked bool) (*Identity, error) {
	if cookie == "" {
		return nil, ErrNoSession
	}

	claims, err := p.parse(cookie)
	if err != nil {
		return nil, err
	}

	if claims.TokenUse != tokenUseSession {
		return nil, fmt.Errorf("%w: not a session token", ErrInvalidSession)
	}

	if checkRevoked && p.revocations != nil {
		validAfter, err := p.revocations.ValidAfter(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check revocation: %w", err)
		}

		if claims.IssuedAt == nil || claims.IssuedAt.Before(validAfter) {
			return nil, ErrSessionRevoked
		}
	}

	identity := identityFromClaims(claims)
	return &identity, nil
}

func (p *LocalProvider) RevokeSessions(ctx context.Context, uid string) error {
	if p.revocations == nil {
		return ErrUnsupported
	}

	// second precision, matching the iat claim
	return p.revocations.RevokeAll(ctx, uid, p.now().Truncate(time.Second))
}

// local identities come from the OAuth provider and cannot be renamed here
func (p *LocalProvider) UpdateDisplayName(_ context.Context, _, _ string) error {
	return ErrUnsupported
}

func (p *LocalProvider) sign(identity Identity, use string, ttl time.Duration) (string, error) {
	if identity.UID == "" {
		return "", fmt.Errorf("identity has no uid")
	}

	now := p.now()
	claims := Claims{
		UserID:        identity.UID,
		Email:         identity.Email,
		Name:          identity.DisplayName,
		Picture:       identity.PhotoURL,
		EmailVerified: identity.EmailVerified,
		TokenUse:      use,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    localIssuer,
			Subject:   identity.UID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *LocalProvider) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return p.secret, nil
	},
		jwt.WithTimeFunc(p.now),
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("%w: invalid token", ErrInvalidSession)
	}

	return claims, nil
}

func identityFromClaims(claims *Claims) Identity {
	return Identity{
		UID:           claims.UserID,
		Email:         claims.Email,
		DisplayName:   claims.Name,
		PhotoURL:      claims.Picture,
		EmailVerified: claims.EmailVerified,
	}
}
