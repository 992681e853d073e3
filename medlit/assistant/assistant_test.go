package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	papers    []research.Paper
	analysis  *research.CaseAnalysis
	answer    *research.QueryResult
	err       error
	lastNiche string
	lastCase  research.CaseRequest
	lastQuery string
}

func (f *fakeAPI) Newsfeed(_ context.Context, niche string, months int) ([]research.Paper, error) {
	f.lastNiche = fmt.Sprintf("%s/%d", niche, months)
	return f.papers, f.err
}

func (f *fakeAPI) AnalyzeCase(_ context.Context, req research.CaseRequest) (*research.CaseAnalysis, error) {
	f.lastCase = req
	return f.analysis, f.err
}

func (f *fakeAPI) Query(_ context.Context, query string) (*research.QueryResult, error) {
	f.lastQuery = query
	return f.answer, f.err
}

func setup(t *testing.T, api *fakeAPI) (*Service, *profiles.Service) {
	t.Helper()

	profileSvc := profiles.NewService(profiles.NewMemoryStore())
	return NewService(api, profileSvc), profileSvc
}

var validCase = CaseInput{
	PatientHistory:  "64F, type 2 diabetes",
	CurrentSymptoms: "progressive dyspnea",
	DoctorOpinion:   "suspect heart failure",
	Specialties:     []string{"cardiology", "pulmonology"},
}

func TestNewsfeedForUser_UsesProfileField(t *testing.T) {
	api := &fakeAPI{papers: []research.Paper{{PMCID: "PMC1", Title: "t"}}}
	svc, profileSvc := setup(t, api)
	ctx := context.Background()

	require.NoError(t, profileSvc.SaveOnboarding(ctx, "u1", profiles.Onboarding{Field: "Neurology"}))

	feed := svc.NewsfeedForUser(ctx, "u1")

	assert.NoError(t, feed.Err)
	assert.Equal(t, "neurology", feed.Niche)
	assert.Equal(t, "neurology/6", api.lastNiche)
	assert.Len(t, feed.Papers, 1)
}

func TestNewsfeedForUser_DefaultsToGeneral(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := setup(t, api)

	feed := svc.NewsfeedForUser(context.Background(), "new-user")

	assert.Equal(t, "general", feed.Niche)
	assert.Equal(t, "general/6", api.lastNiche)
	assert.NotNil(t, feed.Papers)
}

func TestNewsfeedForUser_FailureIsEmpty(t *testing.T) {
	api := &fakeAPI{err: &research.StatusError{Code: http.StatusBadGateway}}
	svc, _ := setup(t, api)

	feed := svc.NewsfeedForUser(context.Background(), "u1")

	assert.Error(t, feed.Err)
	assert.NotNil(t, feed.Papers)
	assert.Empty(t, feed.Papers)
}

func TestAnalyzeCase_Success(t *testing.T) {
	api := &fakeAPI{analysis: &research.CaseAnalysis{Analysis: "HFpEF likely", Sources: []string{"PMC9"}}}
	svc, profileSvc := setup(t, api)
	ctx := context.Background()

	result := svc.AnalyzeCase(ctx, "u1", validCase)

	require.NoError(t, result.Err)
	assert.Equal(t, "HFpEF likely", result.Analysis)
	assert.Equal(t, []string{"PMC9"}, result.Sources)
	assert.Equal(t, []string{"cardiology", "pulmonology"}, api.lastCase.Specialties)
	assert.Equal(t, int64(1), profileSvc.ProfileData(ctx, "u1").Stats.AIInteractions)
}

func TestAnalyzeCase_MissingFields(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := setup(t, api)

	in := validCase
	in.DoctorOpinion = "   "

	result := svc.AnalyzeCase(context.Background(), "u1", in)

	assert.ErrorIs(t, result.Err, ErrInvalidCase)
	assert.Empty(t, api.lastCase.PatientHistory, "invalid case should not reach the API")
}

func TestAnalyzeCase_UpstreamStatusInError(t *testing.T) {
	api := &fakeAPI{err: &research.StatusError{Code: http.StatusInternalServerError}}
	svc, profileSvc := setup(t, api)
	ctx := context.Background()

	result := svc.AnalyzeCase(ctx, "u1", validCase)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "500")
	assert.Equal(t, "Server responded with 500: Internal Server Error", result.Err.Error())
	assert.NotNil(t, result.Sources)
	assert.Zero(t, profileSvc.ProfileData(ctx, "u1").Stats.AIInteractions)
}

func TestResearch(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"unreachable", fmt.Errorf("%w: dial tcp", research.ErrUnreachable), msgUnreachable},
		{"server error", &research.StatusError{Code: 500}, msgServerError},
		{"other status", &research.StatusError{Code: 429}, "Server responded with status: 429"},
		{"unexpected", errors.New("failed to decode response"), msgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setup(t, &fakeAPI{err: tt.err})

			outcome := svc.Research(context.Background(), "u1", "beta blockers in COPD")

			require.Error(t, outcome.Err)
			assert.Equal(t, tt.wantErr, outcome.Err.Error())
			assert.ErrorIs(t, outcome.Err, tt.err)
			assert.NotNil(t, outcome.Sources)
		})
	}

	t.Run("success formats sources", func(t *testing.T) {
		api := &fakeAPI{answer: &research.QueryResult{Answer: "yes", Sources: []string{"PMC5", "textbook"}}}
		svc, profileSvc := setup(t, api)
		ctx := context.Background()

		outcome := svc.Research(ctx, "u1", "  beta blockers in COPD  ")

		require.NoError(t, outcome.Err)
		assert.Equal(t, "beta blockers in COPD", api.lastQuery)
		assert.Equal(t, "yes", outcome.Answer)
		require.Len(t, outcome.Sources, 2)
		assert.Equal(t, "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC5/", outcome.Sources[0].URL)
		assert.Empty(t, outcome.Sources[1].URL)
		assert.Equal(t, int64(1), profileSvc.ProfileData(ctx, "u1").Stats.AIInteractions)
	})

	t.Run("blank query", func(t *testing.T) {
		api := &fakeAPI{}
		svc, _ := setup(t, api)

		outcome := svc.Research(context.Background(), "u1", " ")

		assert.ErrorIs(t, outcome.Err, ErrEmptyQuery)
		assert.Empty(t, api.lastQuery)
	})
}

func TestMarkPaperRead(t *testing.T) {
	svc, profileSvc := setup(t, &fakeAPI{})
	ctx := context.Background()

	require.NoError(t, svc.MarkPaperRead(ctx, "u1"))
	require.NoError(t, svc.MarkPaperRead(ctx, "u1"))

	assert.Equal(t, int64(2), profileSvc.ProfileData(ctx, "u1").Stats.PapersRead)
}

func TestNormalizeSpecialties(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty defaults to general", nil, []string{"general"}},
		{"general alone", []string{"general"}, []string{"general"}},
		{"specific wins over general", []string{"general", "cardiology"}, []string{"cardiology"}},
		{"dedupes and lowercases", []string{"Neurology", "neurology ", "pathology"}, []string{"neurology", "pathology"}},
		{"unknown values dropped", []string{"astrology"}, []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSpecialties(tt.in))
		})
	}
}
