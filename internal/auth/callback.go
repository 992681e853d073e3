package auth

import (
	"net/url"
	"strings"
)

const (
	LoginPath           = "/login"
	LogoutPath          = "/logout"
	DefaultCallbackPath = "/dashboard"
	callbackParam       = "callbackUrl"
)

// builds the login redirect preserving the page the user asked for
func LoginURL(callbackPath string) string {
	if callbackPath == "" {
		return LoginPath
	}

	return LoginPath + "?" + url.Values{callbackParam: {callbackPath}}.Encode()
}

// reads the callback from a login URL query
func CallbackFromQuery(values url.Values) string {
	return SafeCallback(values.Get(callbackParam))
}

// keeps post-login redirects on this site; anything else falls back to the dashboard
func SafeCallback(raw string) string {
	raw = strings.TrimSpace(raw)

	// tolerate a callback that was percent-encoded twice by older clients
	if strings.HasPrefix(raw, "%2F") || strings.HasPrefix(raw, "%2f") {
		if decoded, err := url.PathUnescape(raw); err == nil {
			raw = decoded
		}
	}

	if raw == "" || !strings.HasPrefix(raw, "/") {
		return DefaultCallbackPath
	}

	if strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return DefaultCallbackPath
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultCallbackPath
	}

	if u.Path == LoginPath || u.Path == LogoutPath {
		return DefaultCallbackPath
	}

	return raw
}
