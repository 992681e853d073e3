package onboarding

import "codeberg.org/medlit/server/medlit/profiles"

// SaveRequest is the completed onboarding questionnaire
type SaveRequest struct {
	Profession string `json:"profession" binding:"required,oneof=professional teacher student"`
	Field      string `json:"field" binding:"required,oneof=cardiology neurology pulmonology pediatrics orthopedics pathology general emergency"`
	Frequency  string `json:"frequency" binding:"required,oneof=daily weekly monthly quarterly rarely"`
	About      string `json:"about" binding:"max=2000"`
}

// StatusResponse reports whether onboarding is finished
type StatusResponse struct {
	Completed bool   `json:"completed"`
	Error     string `json:"error,omitempty"`
}

// OptionsResponse lists the choices offered by the onboarding wizard
type OptionsResponse struct {
	Professions []profiles.Option `json:"professions"`
	Fields      []profiles.Option `json:"fields"`
	Frequencies []profiles.Option `json:"frequencies"`
}

type SaveResponse struct {
	Success bool `json:"success"`
}
