package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebsiteFetcherOptions configure the website fetcher tool.
type WebsiteFetcherOptions struct {
	// Timeout bounds the whole fetch round trip.
	Timeout time.Duration
	// PreviewLength caps how many characters of the body are returned.
	PreviewLength int
	// HTTPClient overrides the default client (tests, proxies).
	HTTPClient *http.Client
}

// WebsiteFetcher retrieves a URL and summarizes the response for the model:
// status, size, content type and a bounded preview of the body. Network
// failures are expected failures and come back as error payloads.
type WebsiteFetcher struct {
	client        *http.Client
	previewLength int
}

// NewWebsiteFetcher constructs the fetcher with a 10 second timeout and a
// 2000 character preview by default.
func NewWebsiteFetcher(optFns ...func(o *WebsiteFetcherOptions)) *WebsiteFetcher {
	opts := WebsiteFetcherOptions{
		Timeout:       10 * time.Second,
		PreviewLength: 2000,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &WebsiteFetcher{client: client, previewLength: opts.PreviewLength}
}

// Name returns the unique tool name.
func (t *WebsiteFetcher) Name() string { return "fetch_website" }

// Description returns the description shown to the model.
func (t *WebsiteFetcher) Description() string {
	return "Fetch the content of a website URL and return a summary of the response"
}

// Parameters returns the JSON schema for the fetcher arguments.
func (t *WebsiteFetcher) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "The URL of the website to fetch",
			},
		},
		"required": []string{"url"},
	}
}

type websiteFetcherArgs struct {
	URL string `json:"url"`
}

type websiteSummary struct {
	StatusCode     int    `json:"status_code"`
	ContentLength  int    `json:"content_length"`
	ContentType    string `json:"content_type"`
	ContentPreview string `json:"content_preview"`
	Note           string `json:"note,omitempty"`
}

// Execute fetches the URL and returns the JSON summary.
func (t *WebsiteFetcher) Execute(ctx context.Context, arguments string) (string, error) {
	var args websiteFetcherArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return Errorf("invalid arguments for tool 'fetch_website': malformed JSON: %v", err), nil
	}
	if args.URL == "" {
		return Errorf("invalid arguments for tool 'fetch_website': url is required"), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, args.URL, nil)
	if err != nil {
		return Errorf("invalid URL %q: %v", args.URL, err), nil
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return Errorf("failed to fetch %s: %v", args.URL, err), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Errorf("failed to read response from %s: %v", args.URL, err), nil
	}

	summary := websiteSummary{
		StatusCode:    resp.StatusCode,
		ContentLength: len(body),
		ContentType:   resp.Header.Get("Content-Type"),
	}

	content := string(body)
	if len(content) > t.previewLength {
		summary.ContentPreview = content[:t.previewLength]
		summary.Note = fmt.Sprintf("Content truncated to first %d characters", t.previewLength)
	} else {
		summary.ContentPreview = content
	}

	out, err := json.Marshal(summary)
	if err != nil {
		return "", NewToolError(t.Name(), fmt.Sprintf("marshal summary: %v", err), "EXECUTION_ERROR")
	}

	return string(out), nil
}
