package profiles

import (
	"context"
	"errors"
	"time"
)

// the profile document does not exist yet
var ErrNotFound = errors.New("profile not found")

// answers from the onboarding questionnaire
type Onboarding struct {
	Profession  string     `firestore:"profession" json:"profession"`
	Field       string     `firestore:"field" json:"field"`
	Frequency   string     `firestore:"frequency" json:"frequency"`
	About       string     `firestore:"about" json:"about"`
	CompletedAt *time.Time `firestore:"completedAt" json:"completedAt"`
}

// usage counters shown on the profile page
type Stats struct {
	PapersRead     int64 `firestore:"papersRead" json:"papersRead"`
	AIInteractions int64 `firestore:"aiInteractions" json:"aiInteractions"`
	DaysActive     int64 `firestore:"daysActive" json:"daysActive"`
}

// the stored per-user profile document
type Document struct {
	Onboarding Onboarding `firestore:"onboarding" json:"onboarding"`
	Stats      Stats      `firestore:"stats" json:"stats"`
}

// profile data with defaults filled in; Err is set when the store could not be read
type ProfileData struct {
	Document
	Err error `json:"-"`
}

// result of the onboarding check; Err is set when the store could not be read
type Status struct {
	Completed bool
	Err       error
}

// editable profile fields, nil means unchanged
type Update struct {
	About *string `json:"about,omitempty"`
	Field *string `json:"field,omitempty"`
}

func (u Update) IsEmpty() bool {
	return u.About == nil && u.Field == nil
}

// names a counter in Stats
type StatField string

const (
	StatPapersRead     StatField = "papersRead"
	StatAIInteractions StatField = "aiInteractions"
	StatDaysActive     StatField = "daysActive"
)

func (f StatField) Valid() bool {
	switch f {
	case StatPapersRead, StatAIInteractions, StatDaysActive:
		return true
	}
	return false
}

// persists profile documents keyed by user id
type Store interface {
	// returns ErrNotFound when the user has no document
	Get(ctx context.Context, uid string) (*Document, error)

	// creates the document if needed and merges the onboarding answers into it
	MergeOnboarding(ctx context.Context, uid string, onboarding Onboarding) error

	// sets the non-nil fields of an existing document, ErrNotFound otherwise
	UpdateOnboarding(ctx context.Context, uid string, update Update) error

	// adds delta to a counter, creating the document if needed
	IncrementStat(ctx context.Context, uid string, field StatField, delta int64) error
}

// a selectable answer in the onboarding wizard
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

var Professions = []Option{
	{ID: "professional", Name: "Medical Professional", Description: "Practicing physician, surgeon, or medical specialist"},
	{ID: "teacher", Name: "Medical Educator", Description: "Professor, researcher, or medical school faculty"},
	{ID: "student", Name: "Medical Student", Description: "Student in medical school or residency program"},
}

var Fields = []Option{
	{ID: "cardiology", Name: "Cardiology"},
	{ID: "neurology", Name: "Neurology"},
	{ID: "pulmonology", Name: "Pulmonology"},
	{ID: "pediatrics", Name: "Pediatrics"},
	{ID: "orthopedics", Name: "Orthopedics"},
	{ID: "pathology", Name: "Pathology"},
	{ID: "general", Name: "General Medicine"},
	{ID: "emergency", Name: "Emergency Medicine"},
}

var Frequencies = []Option{
	{ID: "daily", Name: "Daily", Description: "I read medical literature every day"},
	{ID: "weekly", Name: "Weekly", Description: "I dedicate time each week to stay updated"},
	{ID: "monthly", Name: "Monthly", Description: "I review key findings on a monthly basis"},
	{ID: "quarterly", Name: "Quarterly", Description: "I catch up on research every few months"},
	{ID: "rarely", Name: "Rarely", Description: "I find it difficult to make time for research"},
}

// reports whether id is one of the options
func HasOption(options []Option, id string) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}
