package onboarding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *profiles.Service, *http.Cookie) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := auth.NewLocalProvider("onboarding-test-secret", nil)
	require.NoError(t, err)

	session, err := local.IssueSession(auth.Identity{UID: "u1"}, auth.SessionTTL)
	require.NoError(t, err)

	svc := profiles.NewService(profiles.NewMemoryStore())

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), auth.NewGate(local, false), svc)

	return r, svc, &http.Cookie{Name: auth.CookieName, Value: session}
}

func TestSave(t *testing.T) {
	r, svc, cookie := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding", strings.NewReader(
		`{"profession":"student","field":"pediatrics","frequency":"weekly","about":"MS3"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	data := svc.ProfileData(context.Background(), "u1")
	assert.Equal(t, "pediatrics", data.Onboarding.Field)
	assert.NotNil(t, data.Onboarding.CompletedAt)
}

func TestSave_RejectsUnknownOptions(t *testing.T) {
	r, svc, cookie := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding", strings.NewReader(
		`{"profession":"astronaut","field":"pediatrics","frequency":"weekly"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.OnboardingStatus(context.Background(), "u1").Completed)
}

func TestStatus(t *testing.T) {
	r, svc, cookie := setupRouter(t)

	get := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/status", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.JSONEq(t, `{"completed":false}`, get())

	require.NoError(t, svc.SaveOnboarding(context.Background(), "u1", profiles.Onboarding{Field: "general"}))

	assert.JSONEq(t, `{"completed":true}`, get())
}

func TestStatus_RequiresSession(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/status", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptions_Public(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"cardiology"`)
	assert.Contains(t, w.Body.String(), `"id":"quarterly"`)
}
