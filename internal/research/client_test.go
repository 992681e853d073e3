package research

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", WithHTTPClient(srv.Client()))
}

func TestNewsfeed(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/newsfeed", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req newsfeedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cardiology", req.Niche)
		assert.Equal(t, 6, req.Months)

		_, _ = w.Write([]byte(`{"papers":[{"pmcid":"PMC123","title":"Statins revisited","publication_date":"2025-01-02","last_updated":"2025-02-01","content":"abstract","full_text_url":"https://example.org/p"}]}`))
	})

	papers, err := client.Newsfeed(context.Background(), "cardiology", 6)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, "PMC123", papers[0].PMCID)
	assert.Equal(t, "Statins revisited", papers[0].Title)
	assert.Equal(t, "https://example.org/p", papers[0].FullTextURL)
}

func TestNewsfeed_MissingPapersIsEmpty(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	papers, err := client.Newsfeed(context.Background(), "general", 6)
	require.NoError(t, err)
	assert.NotNil(t, papers)
	assert.Empty(t, papers)
}

func TestAnalyzeCase(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze-case", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "58M, hypertension", body["patient_history"])
		assert.Equal(t, "chest pain", body["current_symptoms"])
		assert.Equal(t, "", body["patient_perspective"])
		assert.Equal(t, "angina", body["doctor_opinion"])
		assert.Equal(t, []any{"cardiology"}, body["specialties"])

		_, _ = w.Write([]byte(`{"analysis":"likely stable angina","sources":["PMC42"]}`))
	})

	result, err := client.AnalyzeCase(context.Background(), CaseRequest{
		PatientHistory:  "58M, hypertension",
		CurrentSymptoms: "chest pain",
		DoctorOpinion:   "angina",
		Specialties:     []string{"cardiology"},
	})
	require.NoError(t, err)
	assert.Equal(t, "likely stable angina", result.Analysis)
	assert.Equal(t, []string{"PMC42"}, result.Sources)
}

func TestQuery(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rag-query", r.URL.Path)

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "first-line therapy for migraine", req.Query)

		_, _ = w.Write([]byte(`{"answer":"**Triptans**","sources":["https://pubmed.ncbi.nlm.nih.gov/1/"]}`))
	})

	result, err := client.Query(context.Background(), "first-line therapy for migraine")
	require.NoError(t, err)
	assert.Equal(t, "**Triptans**", result.Answer)
	assert.Len(t, result.Sources, 1)
}

func TestStatusError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	})

	_, err := client.Query(context.Background(), "anything")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, statusErr.Body, "model overloaded")
	assert.Equal(t, "Server responded with 503: Service Unavailable", err.Error())
	assert.Equal(t, 503, StatusCode(err))
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url)

	_, err := client.Newsfeed(context.Background(), "general", 6)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Zero(t, StatusCode(err))
}

func TestMalformedResponse(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.AnalyzeCase(context.Background(), CaseRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestCancelledContext(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, "q")
	assert.Error(t, err)
}
