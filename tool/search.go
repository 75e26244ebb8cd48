package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// EnvSerpAPIKey names the environment variable holding the SerpAPI
// credential.
const EnvSerpAPIKey = "SERPAPI_API_KEY"

const defaultSerpAPIBaseURL = "https://serpapi.com"

// SearchOptions configure the web search tool.
type SearchOptions struct {
	// APIKey overrides the SERPAPI_API_KEY environment variable.
	APIKey string
	// Timeout bounds the whole search round trip. Searches are slower than
	// plain fetches, so the default is an order of magnitude larger.
	Timeout time.Duration
	// BaseURL overrides the SerpAPI endpoint (tests).
	BaseURL string
	// DefaultNumResults is used when the model omits num_results.
	DefaultNumResults int
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// Search queries the web through SerpAPI and returns the organic results,
// answer box, knowledge graph and related searches as JSON text. The
// credential is required at construction; a missing key is a configuration
// error, not a runtime tool failure.
type Search struct {
	apiKey            string
	baseURL           string
	client            *http.Client
	defaultNumResults int
}

// NewSearch constructs the search tool, failing when no credential is
// resolvable.
func NewSearch(optFns ...func(o *SearchOptions)) (*Search, error) {
	opts := SearchOptions{
		Timeout:           30 * time.Second,
		BaseURL:           defaultSerpAPIBaseURL,
		DefaultNumResults: 5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvSerpAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("search: missing API key (set %s)", EnvSerpAPIKey)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &Search{
		apiKey:            apiKey,
		baseURL:           opts.BaseURL,
		client:            client,
		defaultNumResults: opts.DefaultNumResults,
	}, nil
}

// Name returns the unique tool name.
func (t *Search) Name() string { return "search" }

// Description returns the description shown to the model.
func (t *Search) Description() string {
	return "Search the web and return organic results, answer box, knowledge graph and related searches"
}

// Parameters returns the JSON schema for the search arguments.
func (t *Search) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query",
			},
			"num_results": map[string]any{
				"type":        "integer",
				"description": "Number of organic results to return (default 5)",
			},
			"location": map[string]any{
				"type":        "string",
				"description": "Optional location to originate the search from",
			},
		},
		"required": []string{"query"},
	}
}

type searchArgs struct {
	Query      string `json:"query"`
	NumResults int    `json:"num_results"`
	Location   string `json:"location"`
}

type searchResult struct {
	Title   string `json:"title,omitempty"`
	Link    string `json:"link,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

type searchSummary struct {
	Query           string         `json:"query"`
	OrganicResults  []searchResult `json:"organic_results"`
	AnswerBox       map[string]any `json:"answer_box,omitempty"`
	KnowledgeGraph  map[string]any `json:"knowledge_graph,omitempty"`
	RelatedSearches []string       `json:"related_searches,omitempty"`
}

// serpResponse mirrors the subset of the SerpAPI payload the summary needs.
type serpResponse struct {
	Error          string         `json:"error"`
	OrganicResults []searchResult `json:"organic_results"`
	AnswerBox      map[string]any `json:"answer_box"`
	KnowledgeGraph map[string]any `json:"knowledge_graph"`
	RelatedSearch  []struct {
		Query string `json:"query"`
	} `json:"related_searches"`
}

// Execute performs the search and returns the JSON summary.
func (t *Search) Execute(ctx context.Context, arguments string) (string, error) {
	var args searchArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return Errorf("invalid arguments for tool 'search': malformed JSON: %v", err), nil
	}
	if args.Query == "" {
		return Errorf("invalid arguments for tool 'search': query is required"), nil
	}
	if args.NumResults <= 0 {
		args.NumResults = t.defaultNumResults
	}

	query := url.Values{}
	query.Set("engine", "google")
	query.Set("q", args.Query)
	query.Set("num", strconv.Itoa(args.NumResults))
	query.Set("api_key", t.apiKey)
	if args.Location != "" {
		query.Set("location", args.Location)
	}

	endpoint := t.baseURL + "/search.json?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", NewToolError(t.Name(), fmt.Sprintf("build request: %v", err), "EXECUTION_ERROR")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return Errorf("search request failed: %v", err), nil
	}
	defer resp.Body.Close()

	var serp serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&serp); err != nil {
		return Errorf("failed to decode search response: %v", err), nil
	}
	if serp.Error != "" {
		return Errorf("search failed: %s", serp.Error), nil
	}
	if resp.StatusCode != http.StatusOK {
		return Errorf("search failed with status %d", resp.StatusCode), nil
	}

	organic := serp.OrganicResults
	if len(organic) > args.NumResults {
		organic = organic[:args.NumResults]
	}
	if organic == nil {
		organic = []searchResult{}
	}

	summary := searchSummary{
		Query:          args.Query,
		OrganicResults: organic,
		AnswerBox:      serp.AnswerBox,
		KnowledgeGraph: serp.KnowledgeGraph,
	}
	for _, rs := range serp.RelatedSearch {
		if rs.Query != "" {
			summary.RelatedSearches = append(summary.RelatedSearches, rs.Query)
		}
	}

	out, err := json.Marshal(summary)
	if err != nil {
		return "", NewToolError(t.Name(), fmt.Sprintf("marshal summary: %v", err), "EXECUTION_ERROR")
	}

	return string(out), nil
}
