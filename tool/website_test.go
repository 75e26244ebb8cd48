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

func TestWebsiteFetcher_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	fetcher := NewWebsiteFetcher()

	out, err := fetcher.Execute(context.Background(), `{"url":"`+srv.URL+`"}`)
	require.NoError(t, err)

	var summary struct {
		StatusCode     int    `json:"status_code"`
		ContentLength  int    `json:"content_length"`
		ContentType    string `json:"content_type"`
		ContentPreview string `json:"content_preview"`
		Note           string `json:"note"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, http.StatusOK, summary.StatusCode)
	assert.Equal(t, len("<html><body>hello</body></html>"), summary.ContentLength)
	assert.Equal(t, "text/html; charset=utf-8", summary.ContentType)
	assert.Equal(t, "<html><body>hello</body></html>", summary.ContentPreview)
	assert.Empty(t, summary.Note)
}

func TestWebsiteFetcher_TruncatesPreview(t *testing.T) {
	body := strings.Repeat("x", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	fetcher := NewWebsiteFetcher(func(o *WebsiteFetcherOptions) {
		o.PreviewLength = 10
	})

	out, err := fetcher.Execute(context.Background(), `{"url":"`+srv.URL+`"}`)
	require.NoError(t, err)

	var summary websiteSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, 100, summary.ContentLength)
	assert.Equal(t, strings.Repeat("x", 10), summary.ContentPreview)
	assert.Contains(t, summary.Note, "truncated to first 10 characters")
}

func TestWebsiteFetcher_NetworkError(t *testing.T) {
	fetcher := NewWebsiteFetcher()

	out, err := fetcher.Execute(context.Background(), `{"url":"http://127.0.0.1:1/nope"}`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Error:"), "payload %q should start with Error:", out)
}

func TestWebsiteFetcher_MalformedArguments(t *testing.T) {
	fetcher := NewWebsiteFetcher()
	ctx := context.Background()

	for _, args := range []string{`{not json`, `{}`} {
		out, err := fetcher.Execute(ctx, args)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Error:"), "payload %q should start with Error:", out)
	}
}
