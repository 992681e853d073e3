package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/profiles"
)

const (
	msgUnreachable = "Cannot connect to the research server. Please ensure the server is running."
	msgServerError = "The research server encountered an error. Please try again with a different query."
	msgUnexpected  = "An unexpected error occurred"
)

// Service forwards user requests to the research API. None of its
// operations fail outright: errors come back on the result value.
type Service struct {
	api      ResearchAPI
	profiles Profiles
}

func NewService(api ResearchAPI, profiles Profiles) *Service {
	return &Service{api: api, profiles: profiles}
}

// fetches recent papers for the user's field
func (s *Service) NewsfeedForUser(ctx context.Context, uid string) Feed {
	data := s.profiles.ProfileData(ctx, uid)
	if data.Err != nil {
		logger.FromContext(ctx).Warn("profile unavailable, using default niche",
			"user_id", uid,
			"error", data.Err,
		)
	}

	niche := strings.ToLower(strings.TrimSpace(data.Onboarding.Field))
	if niche == "" {
		niche = DefaultNiche
	}

	papers, err := s.api.Newsfeed(ctx, niche, NewsfeedMonths)
	if err != nil {
		logger.FromContext(ctx).Error("failed to fetch newsfeed",
			"user_id", uid,
			"niche", niche,
			"error", err,
		)
		return Feed{Niche: niche, Papers: []research.Paper{}, Err: err}
	}

	if papers == nil {
		papers = []research.Paper{}
	}

	return Feed{Niche: niche, Papers: papers}
}

// submits a clinical case; upstream failures carry the HTTP status in Err
func (s *Service) AnalyzeCase(ctx context.Context, uid string, in CaseInput) CaseResult {
	if blank(in.PatientHistory) || blank(in.CurrentSymptoms) || blank(in.DoctorOpinion) {
		return CaseResult{Sources: []string{}, Err: ErrInvalidCase}
	}

	analysis, err := s.api.AnalyzeCase(ctx, research.CaseRequest{
		PatientHistory:     in.PatientHistory,
		CurrentSymptoms:    in.CurrentSymptoms,
		PatientPerspective: in.PatientPerspective,
		DoctorOpinion:      in.DoctorOpinion,
		Specialties:        NormalizeSpecialties(in.Specialties),
	})
	if err != nil {
		logger.FromContext(ctx).Error("case analysis failed", "user_id", uid, "error", err)
		return CaseResult{Sources: []string{}, Err: caseError(err)}
	}

	s.recordInteraction(ctx, uid)

	sources := analysis.Sources
	if sources == nil {
		sources = []string{}
	}

	return CaseResult{Analysis: analysis.Analysis, Sources: sources}
}

// answers a free-text research question
func (s *Service) Research(ctx context.Context, uid, query string) QueryOutcome {
	query = strings.TrimSpace(query)
	if query == "" {
		return QueryOutcome{Sources: []research.SourceLink{}, Err: ErrEmptyQuery}
	}

	result, err := s.api.Query(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Error("research query failed", "user_id", uid, "error", err)
		return QueryOutcome{Sources: []research.SourceLink{}, Err: queryError(err)}
	}

	s.recordInteraction(ctx, uid)

	return QueryOutcome{
		Answer:  result.Answer,
		Sources: research.FormatSources(result.Sources),
	}
}

// counts a paper opened from the newsfeed
func (s *Service) MarkPaperRead(ctx context.Context, uid string) error {
	return s.profiles.RecordStat(ctx, uid, profiles.StatPapersRead)
}

// stat failures never fail the request
func (s *Service) recordInteraction(ctx context.Context, uid string) {
	if err := s.profiles.RecordStat(ctx, uid, profiles.StatAIInteractions); err != nil {
		logger.FromContext(ctx).Warn("failed to record interaction", "user_id", uid, "error", err)
	}
}

// cleans the specialty selection: known values only, no duplicates,
// and "general" only when nothing more specific was picked
func NormalizeSpecialties(in []string) []string {
	out := make([]string, 0, len(in))

	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == DefaultNiche || !profiles.HasOption(profiles.Fields, s) || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return []string{DefaultNiche}
	}

	return out
}

func caseError(err error) error {
	if errors.Is(err, research.ErrUnreachable) {
		return &UserError{Message: msgUnreachable, Err: err}
	}

	var statusErr *research.StatusError
	if errors.As(err, &statusErr) {
		return &UserError{Message: statusErr.Error(), Err: err}
	}

	return &UserError{Message: msgUnexpected, Err: err}
}

func queryError(err error) error {
	if errors.Is(err, research.ErrUnreachable) {
		return &UserError{Message: msgUnreachable, Err: err}
	}

	switch code := research.StatusCode(err); {
	case code == http.StatusInternalServerError:
		return &UserError{Message: msgServerError, Err: err}
	case code != 0:
		return &UserError{Message: fmt.Sprintf("Server responded with status: %d", code), Err: err}
	}

	return &UserError{Message: msgUnexpected, Err: err}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
