package auth

import "codeberg.org/medlit/server/internal/auth"

// SessionRequest carries the identity provider's ID token
type SessionRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// SessionResponse mirrors the shape the sign-in page expects
type SessionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// MeResponse wraps the verified identity
type MeResponse struct {
	User *auth.Identity `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
