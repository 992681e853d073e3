package assistant

import (
	"context"
	"errors"

	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/profiles"
)

const (
	// how far back the newsfeed looks
	NewsfeedMonths = 6

	// niche used when the user has not picked a field
	DefaultNiche = "general"
)

var (
	ErrInvalidCase = errors.New("patient history, current symptoms and doctor opinion are required")
	ErrEmptyQuery  = errors.New("query is required")
)

// the calls made against the external research API
type ResearchAPI interface {
	Newsfeed(ctx context.Context, niche string, months int) ([]research.Paper, error)
	AnalyzeCase(ctx context.Context, req research.CaseRequest) (*research.CaseAnalysis, error)
	Query(ctx context.Context, query string) (*research.QueryResult, error)
}

// the profile operations the assistant depends on
type Profiles interface {
	ProfileData(ctx context.Context, uid string) profiles.ProfileData
	RecordStat(ctx context.Context, uid string, field profiles.StatField) error
}

// a user's newsfeed; Papers is never nil
type Feed struct {
	Niche  string           `json:"niche"`
	Papers []research.Paper `json:"papers"`
	Err    error            `json:"-"`
}

// fields of the case-analysis form
type CaseInput struct {
	PatientHistory     string   `json:"patient_history"`
	CurrentSymptoms    string   `json:"current_symptoms"`
	PatientPerspective string   `json:"patient_perspective"`
	DoctorOpinion      string   `json:"doctor_opinion"`
	Specialties        []string `json:"specialties"`
}

// result of a case analysis; Err is shown inline on the form
type CaseResult struct {
	Analysis string   `json:"analysis"`
	Sources  []string `json:"sources"`
	Err      error    `json:"-"`
}

// result of a research query; Err carries a message fit for the user
type QueryOutcome struct {
	Answer  string                `json:"answer"`
	Sources []research.SourceLink `json:"sources"`
	Err     error                 `json:"-"`
}

// UserError pairs a user-facing message with the underlying failure
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }
func (e *UserError) Unwrap() error { return e.Err }
