package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// outcome of the session gate for one request
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectClearCookie
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectClearCookie:
		return "redirect_clear_cookie"
	default:
		return "unknown"
	}
}

type Result struct {
	Decision Decision
	Location string
	Identity *Identity
	Err      error
}

// pages reachable without a session
var DefaultPublicPaths = []string{"/", "/login", "/signup", "/demo", "/forgot-password"}

var assetSuffixes = []string{".svg", ".png", ".jpg", ".jpeg", ".ico"}

// Gate decides, per request, whether a session credential admits the caller.
// It holds no per-request state; the provider is the only dependency.
type Gate struct {
	provider      Provider
	publicPaths   map[string]struct{}
	secureCookies bool
}

func NewGate(provider Provider, secureCookies bool, publicPaths ...string) *Gate {
	if len(publicPaths) == 0 {
		publicPaths = DefaultPublicPaths
	}

	paths := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		paths[p] = struct{}{}
	}

	return &Gate{
		provider:      provider,
		publicPaths:   paths,
		secureCookies: secureCookies,
	}
}

func (g *Gate) IsPublic(path string) bool {
	if _, ok := g.publicPaths[path]; ok {
		return true
	}

	lower := strings.ToLower(path)
	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

// decides what to do with a request for path carrying the given cookie value
func (g *Gate) Decide(ctx context.Context, path, cookie string) Result {
	if g.IsPublic(path) {
		return Result{Decision: Allow}
	}

	if cookie == "" {
		return Result{
			Decision: RedirectLogin,
			Location: LoginURL(path),
			Err:      ErrNoSession,
		}
	}

	identity, err := g.provider.VerifySession(ctx, cookie, true)
	if err != nil {
		return Result{
			Decision: RedirectClearCookie,
			Location: LoginPath,
			Err:      err,
		}
	}

	return Result{Decision: Allow, Identity: identity}
}

// gate for page routes: failures become redirects to the login page
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := g.Decide(c.Request.Context(), c.Request.URL.Path, SessionFromRequest(c.Request))

		switch result.Decision {
		case Allow:
			setIdentity(c, result.Identity)
			c.Next()

		case RedirectLogin:
			c.Redirect(http.StatusTemporaryRedirect, result.Location)
			c.Abort()

		case RedirectClearCookie:
			logger.Debug("session rejected by gate",
				"path", c.Request.URL.Path,
				"reason", result.Err,
			)
			ClearSessionCookie(c.Writer, g.secureCookies)
			c.Redirect(http.StatusTemporaryRedirect, result.Location)
			c.Abort()
		}
	}
}

// gate for JSON routes: same checks, answered with 401 instead of a redirect
func (g *Gate) APIMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// already verified by Optional earlier in the chain
		if _, ok := GetIdentity(c); ok {
			c.Next()
			return
		}

		cookie := SessionFromRequest(c.Request)
		if cookie == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		identity, err := g.provider.VerifySession(c.Request.Context(), cookie, true)
		if err != nil {
			if !errors.Is(err, ErrInvalidSession) && !errors.Is(err, ErrSessionRevoked) {
				logger.ErrorErr(err, "session verification failed", "path", c.Request.URL.Path)
			}

			ClearSessionCookie(c.Writer, g.secureCookies)
			apierrors.Unauthorized(c, "session expired, please sign in again")
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// resolves the session without enforcing it, used by public pages that adapt to a signed-in user
func (g *Gate) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := SessionFromRequest(c.Request)
		if cookie != "" {
			if identity, err := g.provider.VerifySession(c.Request.Context(), cookie, true); err == nil {
				setIdentity(c, identity)
			}
		}

		c.Next()
	}
}

func setIdentity(c *gin.Context, identity *Identity) {
	if identity == nil {
		return
	}

	c.Set(ContextUserID, identity.UID)
	c.Set(ContextIdentity, identity)
}

// extracts user_id from context after the gate
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

// extracts the verified identity from context after the gate
func GetIdentity(c *gin.Context) (*Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return nil, false
	}

	identity, ok := v.(*Identity)
	return identity, ok
}
