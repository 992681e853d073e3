package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/medlit/server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = auth.Identity{UID: "github:42", Email: "resident@example.com", DisplayName: "Resident"}

func setupRouter(t *testing.T) (*gin.Engine, *auth.LocalProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := auth.NewLocalProvider("handler-test-secret", auth.NewMemoryRevocationStore())
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), Deps{
		Provider: local,
		Gate:     auth.NewGate(local, false),
	})

	return r, local
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestCreateSession(t *testing.T) {
	r, local := setupRouter(t)

	idToken, err := local.IssueIDToken(identity)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/session", strings.NewReader(`{"id_token":"`+idToken+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	// the cookie opens /auth/me
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), identity.Email)
}

func TestCreateSession_Failure(t *testing.T) {
	r, _ := setupRouter(t)

	for _, body := range []string{`{}`, `{"id_token":"forged"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/session", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to create session"}`, w.Body.String())
		assert.Nil(t, sessionCookie(w))
	}
}

func TestLogout(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestMe_RequiresSession(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRevoke(t *testing.T) {
	r, local := setupRouter(t)

	session, err := local.IssueSession(identity, auth.SessionTTL)
	require.NoError(t, err)
	cookie := &http.Cookie{Name: auth.CookieName, Value: session}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/revoke", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "all sessions revoked")

	cleared := sessionCookie(w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestRevoke_Unsupported(t *testing.T) {
	gin.SetMode(gin.TestMode)

	local, err := auth.NewLocalProvider("handler-test-secret", nil)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), Deps{Provider: local, Gate: auth.NewGate(local, false)})

	session, err := local.IssueSession(identity, auth.SessionTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/revoke", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: session})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
