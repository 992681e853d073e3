package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/login?callbackUrl=%2Fdashboard", LoginURL("/dashboard"))
	assert.Equal(t, "/login?callbackUrl=%2Fresearch%2Fsaved", LoginURL("/research/saved"))
	assert.Equal(t, LoginPath, LoginURL(""))
}

func TestSafeCallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain path", "/research", "/research"},
		{"path with query", "/newsfeed?page=2", "/newsfeed?page=2"},
		{"double encoded", "%2Fcase-analysis", "/case-analysis"},
		{"empty", "", DefaultCallbackPath},
		{"relative", "dashboard", DefaultCallbackPath},
		{"absolute url", "https://evil.example.com/", DefaultCallbackPath},
		{"protocol relative", "//evil.example.com", DefaultCallbackPath},
		{"backslash trick", "/\\evil.example.com", DefaultCallbackPath},
		{"header injection", "/a\r\nSet-Cookie: x=y", DefaultCallbackPath},
		{"login loop", "/login", DefaultCallbackPath},
		{"logout", "/logout", DefaultCallbackPath},
		{"logout with query", "/logout?x=1", DefaultCallbackPath},
		{"double encoded logout", "%2Flogout", DefaultCallbackPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeCallback(tt.raw))
		})
	}
}

func TestCallbackFromQuery_RoundTrip(t *testing.T) {
	u, err := url.Parse(LoginURL("/profile"))
	assert.NoError(t, err)

	assert.Equal(t, "/profile", CallbackFromQuery(u.Query()))
	assert.Equal(t, DefaultCallbackPath, CallbackFromQuery(url.Values{}))
}
