// Package arxiv provides a small SDK for the arXiv query API.
//
// The API is a public Atom feed (http://export.arxiv.org/api/query); no
// key is required, but arXiv asks clients to throttle themselves, so the
// client carries a rate limiter. Usage pattern mirrors the other API
// clients in this repo:
//   - pkg/arxiv — reusable SDK
//   - pkg/tools/std — thin wrapper for LLM function calling
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/isaque468/finagent/pkg/config"
	"golang.org/x/time/rate"
)

// HTTPClient is the interface used for HTTP requests.
//
// Lets tests inject a mock client; *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Paper is one search result from the arXiv feed.
type Paper struct {
	Title     string
	Authors   []string
	Category  string
	Published time.Time
	Summary   string
	URL       string
}

// Client queries the arXiv API.
type Client struct {
	baseURL       string
	httpClient    HTTPClient
	limiter       *rate.Limiter
	retryAttempts int
	maxResults    int
}

// NewFromConfig creates a client from the arxiv section of config.yaml.
// Zero-valued fields fall back to GetDefaults().
func NewFromConfig(cfg config.ArxivConfig) (*Client, error) {
	cfg = cfg.GetDefaults()

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid arxiv.timeout format: %w", err)
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		retryAttempts: cfg.RetryAttempts,
		maxResults:    cfg.MaxResults,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RateLimit)/60.0), cfg.BurstLimit),
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

// Search queries arXiv for papers matching the query, sorted by
// relevance. maxResults <= 0 uses the configured default.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	endpoint := fmt.Sprintf("%s/api/query?%s", c.baseURL, params.Encode())

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return parseFeed(body)
}

// doRequest performs a GET with rate limiting and retries on transient
// failures.
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for i := 0; i < c.retryAttempts; i++ {
		// Wait for the limiter; blocks when over the courtesy limit.
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/atom+xml")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue // network error, retry
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("arxiv api returned status %d", resp.StatusCode)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				continue
			}
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("arxiv api returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
		}

		return body, nil
	}

	return nil, fmt.Errorf("arxiv request failed after %d attempts: %w", c.retryAttempts, lastErr)
}

// Atom feed structures. Only the fields the assistant formats are
// mapped; the arxiv: namespaced primary_category matches by local name.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string       `xml:"id"`
	Title           string       `xml:"title"`
	Summary         string       `xml:"summary"`
	Published       string       `xml:"published"`
	Authors         []atomAuthor `xml:"author"`
	PrimaryCategory atomCategory `xml:"primary_category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// parseFeed converts the Atom XML body into Papers.
func parseFeed(body []byte) ([]Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse arxiv feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		p := Paper{
			Title:    normalizeWhitespace(e.Title),
			Summary:  normalizeWhitespace(e.Summary),
			Category: e.PrimaryCategory.Term,
			URL:      strings.TrimSpace(e.ID),
		}
		for _, a := range e.Authors {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
			p.Published = t
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// normalizeWhitespace collapses the newlines and indentation arXiv puts
// inside titles and abstracts into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
