// Package tavily provides a client for the Tavily web search API.
//
// Tavily is a paid search API aimed at LLM agents; requests carry the
// API key in the JSON body. Same SDK conventions as pkg/arxiv: injectable
// HTTP client, timeouts, retries on transient failures.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/isaque468/finagent/pkg/config"
)

// HTTPClient is the interface used for HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is one web search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Response is the body returned by the /search endpoint.
type Response struct {
	Query   string   `json:"query"`
	Answer  string   `json:"answer"`
	Results []Result `json:"results"`
}

// searchRequest is the body sent to the /search endpoint.
type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

// Client calls the Tavily API.
type Client struct {
	apiKey      string
	baseURL     string
	searchDepth string
	maxResults  int
	httpClient  HTTPClient
}

// NewFromConfig creates a client from the tavily section of config.yaml.
//
// Returns an error when the API key is empty; callers that want the
// degraded "web search disabled" behavior should not construct a client.
func NewFromConfig(cfg config.TavilyConfig) (*Client, error) {
	cfg = cfg.GetDefaults()

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("tavily.api_key is required")
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid tavily.timeout format: %w", err)
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		searchDepth: cfg.SearchDepth,
		maxResults:  cfg.MaxResults,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SetHTTPClient replaces the HTTP client. Used in tests.
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// MaxResults returns the configured default result count.
func (c *Client) MaxResults() int {
	return c.maxResults
}

// Search runs a web search. maxResults <= 0 uses the configured default.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: c.searchDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tavily response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("tavily api key rejected (status %d)", resp.StatusCode)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("tavily rate limit exceeded (status %d)", resp.StatusCode)
	default:
		return nil, fmt.Errorf("tavily api returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse tavily response: %w", err)
	}
	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
