package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewFromConfig(config.TavilyConfig{
		APIKey:  "tvly_test",
		BaseURL: baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestNewFromConfigRequiresKey(t *testing.T) {
	_, err := NewFromConfig(config.TavilyConfig{})
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{
			Query:  gotReq.Query,
			Answer: "The Selic rate is currently 10.5% per year.",
			Results: []Result{
				{Title: "Selic hoje", URL: "https://example.com/selic", Content: "Taxa Selic atual...", Score: 0.98},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Search(context.Background(), "taxa selic atual", 2)
	require.NoError(t, err)

	assert.Equal(t, "tvly_test", gotReq.APIKey)
	assert.Equal(t, "taxa selic atual", gotReq.Query)
	assert.Equal(t, 2, gotReq.MaxResults)
	assert.Equal(t, "basic", gotReq.SearchDepth)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Selic hoje", resp.Results[0].Title)
	assert.NotEmpty(t, resp.Answer)
}

func TestSearchDefaultsMaxResults(t *testing.T) {
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(Response{})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "query", 0)
	require.NoError(t, err)
	assert.Equal(t, client.MaxResults(), gotReq.MaxResults)
}

func TestSearchErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantSub string
	}{
		{"unauthorized", http.StatusUnauthorized, "key rejected"},
		{"rate limited", http.StatusTooManyRequests, "rate limit"},
		{"server error", http.StatusInternalServerError, "status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)
			_, err := client.Search(context.Background(), "query", 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")
	_, err := client.Search(context.Background(), "", 1)
	assert.Error(t, err)
}
