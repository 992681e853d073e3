package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// shared HTTP client for research API calls
var defaultHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// longest error body kept on a StatusError
const maxErrorBody = 512

// Client calls the external research API (newsfeed, case analysis, RAG queries)
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// overrides the outbound limit (default 10 requests/second, burst 5)
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(cl *Client) { cl.limiter = rate.NewLimiter(r, burst) }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: defaultHTTPClient,
		limiter:    rate.NewLimiter(10, 5),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// fetches recent papers for a specialty from the last months months
func (c *Client) Newsfeed(ctx context.Context, niche string, months int) ([]Paper, error) {
	var resp newsfeedResponse

	if err := c.post(ctx, "/newsfeed", newsfeedRequest{Niche: niche, Months: months}, &resp); err != nil {
		return nil, err
	}

	if resp.Papers == nil {
		resp.Papers = []Paper{}
	}

	return resp.Papers, nil
}

// submits a clinical case for analysis
func (c *Client) AnalyzeCase(ctx context.Context, req CaseRequest) (*CaseAnalysis, error) {
	var resp CaseAnalysis

	if err := c.post(ctx, "/analyze-case", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// asks a free-text question of the retrieval-augmented answer endpoint
func (c *Client) Query(ctx context.Context, query string) (*QueryResult, error) {
	var resp QueryResult

	if err := c.post(ctx, "/rag-query", queryRequest{Query: query}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		return &StatusError{Code: resp.StatusCode, Body: string(errBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
