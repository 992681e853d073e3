package auth

import (
	"errors"
	"net/http"

	"codeberg.org/medlit/server/internal/auth"
	apierrors "codeberg.org/medlit/server/internal/errors"
	"codeberg.org/medlit/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// CreateSessionHandler godoc
// @Summary Create session
// @Description Exchange an identity provider ID token for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "ID token"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} SessionResponse
// @Router /api/v1/auth/session [post]
func CreateSessionHandler(provider auth.Provider, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SessionRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, SessionResponse{Success: false, Error: "Failed to create session"})
			return
		}

		session, err := provider.CreateSession(c.Request.Context(), req.IDToken, auth.SessionTTL)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("failed to create session", "error", err)
			c.JSON(http.StatusUnauthorized, SessionResponse{Success: false, Error: "Failed to create session"})
			return
		}

		auth.SetSessionCookie(c.Writer, session, secureCookies)
		c.JSON(http.StatusOK, SessionResponse{Success: true})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c.Writer, secureCookies)
		c.JSON(http.StatusOK, SessionResponse{Success: true})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the identity behind the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
func GetCurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, MeResponse{User: identity})
	}
}

// RevokeHandler godoc
// @Summary Sign out everywhere
// @Description Revoke every session of the current user and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/revoke [post]
func RevokeHandler(provider auth.Provider, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		if err := provider.RevokeSessions(c.Request.Context(), userID); err != nil {
			if errors.Is(err, auth.ErrUnsupported) {
				apierrors.BadRequest(c, "session revocation is not available", err)
				return
			}

			apierrors.InternalError(c, "failed to revoke sessions", err)
			return
		}

		auth.ClearSessionCookie(c.Writer, secureCookies)
		c.JSON(http.StatusOK, MessageResponse{Message: "all sessions revoked"})
	}
}

// BeginAuthHandler godoc
// @Summary Start OAuth sign-in
// @Description Begin the OAuth flow with the given provider (local identity mode only)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Param callbackUrl query string false "Page to return to after sign-in"
// @Success 307 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler(oauth *auth.OAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !oauth.Enabled(provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		if err := oauth.RememberCallback(c.Writer, c.Request, auth.CallbackFromQuery(c.Request.URL.Query())); err != nil {
			apierrors.InternalError(c, "failed to start sign-in", err)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Set("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description Completes the OAuth flow, sets the session cookie and redirects to the remembered page
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 302 {string} string "Redirect to the remembered page"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(oauth *auth.OAuth, local *auth.LocalProvider, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !oauth.Enabled(provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Set("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			apierrors.InternalError(c, "authentication failed", err)
			return
		}

		session, err := local.IssueSession(auth.IdentityFromGoth(gothUser), auth.SessionTTL)
		if err != nil {
			apierrors.InternalError(c, "failed to create session", err)
			return
		}

		auth.SetSessionCookie(c.Writer, session, secureCookies)

		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear oauth state")
		}

		c.Redirect(http.StatusFound, oauth.PopCallback(c.Writer, c.Request))
	}
}
