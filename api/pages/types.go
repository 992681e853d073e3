package pages

import (
	"codeberg.org/medlit/server/internal/auth"
	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/profiles"
)

// View is the payload rendered by the front end for a page
type View struct {
	Page string         `json:"page"`
	User *auth.Identity `json:"user,omitempty"`
	Data any            `json:"data,omitempty"`
}

// LoginData tells the login page where to go afterwards and how to sign in
type LoginData struct {
	CallbackURL string            `json:"callback_url"`
	Providers   map[string]string `json:"providers,omitempty"`
}

type OnboardingData struct {
	Professions []profiles.Option `json:"professions"`
	Fields      []profiles.Option `json:"fields"`
	Frequencies []profiles.Option `json:"frequencies"`
}

type DashboardData struct {
	Field string         `json:"field"`
	Stats profiles.Stats `json:"stats"`
}

type NewsfeedData struct {
	Niche      string           `json:"niche"`
	FieldLabel string           `json:"field_label"`
	Papers     []research.Paper `json:"papers"`
}

type ProfileData struct {
	Profile profiles.Document `json:"profile"`
	Error   string            `json:"error,omitempty"`
}

type CaseAnalysisData struct {
	Specialties []profiles.Option `json:"specialties"`
}
