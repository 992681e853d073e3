package profile

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/medlit/profiles"
)

// ProfileResponse is the profile page payload
type ProfileResponse struct {
	User    *auth.Identity    `json:"user,omitempty"`
	Profile profiles.Document `json:"profile"`
	Error   string            `json:"error,omitempty"`
}

// UpdateRequest changes the display name and the editable onboarding fields
type UpdateRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=100"`
	About       *string `json:"about" binding:"omitempty,max=2000"`
	Field       *string `json:"field" binding:"omitempty,oneof=cardiology neurology pulmonology pediatrics orthopedics pathology general emergency"`
}

type UpdateResponse struct {
	Success bool `json:"success"`
}
