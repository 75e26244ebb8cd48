package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearch_MissingCredential(t *testing.T) {
	t.Setenv(EnvSerpAPIKey, "")

	_, err := NewSearch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSerpAPIKey)
}

func TestSearch_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"organic_results": []map[string]any{
				{"title": "The Go Programming Language", "link": "https://go.dev", "snippet": "Build simple software"},
				{"title": "Go wiki", "link": "https://go.dev/wiki", "snippet": "Community wiki"},
				{"title": "Extra result", "link": "https://example.com", "snippet": "Dropped by limit"},
			},
			"answer_box":       map[string]any{"answer": "Go is a programming language"},
			"knowledge_graph":  map[string]any{"title": "Go"},
			"related_searches": []map[string]any{{"query": "golang tutorial"}, {"query": "go vs rust"}},
		})
	}))
	defer srv.Close()

	search, err := NewSearch(func(o *SearchOptions) {
		o.APIKey = "test-key"
		o.BaseURL = srv.URL
	})
	require.NoError(t, err)

	out, err := search.Execute(context.Background(), `{"query":"golang","num_results":2}`)
	require.NoError(t, err)

	var summary searchSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, "golang", summary.Query)
	require.Len(t, summary.OrganicResults, 2)
	assert.Equal(t, "The Go Programming Language", summary.OrganicResults[0].Title)
	assert.Equal(t, "Go is a programming language", summary.AnswerBox["answer"])
	assert.Equal(t, "Go", summary.KnowledgeGraph["title"])
	assert.Equal(t, []string{"golang tutorial", "go vs rust"}, summary.RelatedSearches)
}

func TestSearch_DefaultNumResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("num"))
		_ = json.NewEncoder(w).Encode(map[string]any{"organic_results": []map[string]any{}})
	}))
	defer srv.Close()

	search, err := NewSearch(func(o *SearchOptions) {
		o.APIKey = "test-key"
		o.BaseURL = srv.URL
	})
	require.NoError(t, err)

	out, err := search.Execute(context.Background(), `{"query":"golang"}`)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(out, "Error:"), "unexpected error payload %q", out)
}

func TestSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "Invalid API key"})
	}))
	defer srv.Close()

	search, err := NewSearch(func(o *SearchOptions) {
		o.APIKey = "bad-key"
		o.BaseURL = srv.URL
	})
	require.NoError(t, err)

	out, err := search.Execute(context.Background(), `{"query":"golang"}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: search failed: Invalid API key", out)
}

func TestSearch_NetworkError(t *testing.T) {
	search, err := NewSearch(func(o *SearchOptions) {
		o.APIKey = "test-key"
		o.BaseURL = "http://127.0.0.1:1"
	})
	require.NoError(t, err)

	out, err := search.Execute(context.Background(), `{"query":"golang"}`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Error:"), "payload %q should start with Error:", out)
}

func TestSearch_MalformedArguments(t *testing.T) {
	search, err := NewSearch(func(o *SearchOptions) {
		o.APIKey = "test-key"
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, args := range []string{`{not json`, `{}`} {
		out, err := search.Execute(ctx, args)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Error:"), "payload %q should start with Error:", out)
	}
}
