// ABOUTME: Client for the structured news article search API
// ABOUTME: Issues authenticated everything, top-headlines and sources requests

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	coreerrors "cosmos-api/core/errors"
	"cosmos-api/core/interfaces"
	"cosmos-api/pkg/utils/html"
)

const (
	// DefaultBaseURL is the public news API endpoint
	DefaultBaseURL = "https://newsapi.org/v2"

	apiName      = "newsapi"
	apiKeyHeader = "X-Api-Key"
)

// Config configures a Client
type Config struct {
	APIKey  string
	BaseURL string
}

// Client talks to the news API
type Client struct {
	deps    interfaces.Dependencies
	apiKey  string
	baseURL string
}

// NewClient creates a news API client
func NewClient(cfg Config, deps interfaces.Dependencies) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		deps:    deps,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}
}

// SearchEverything searches all indexed articles
func (c *Client) SearchEverything(ctx context.Context, params EverythingParams) (*Response, error) {
	var resp Response
	if err := c.get(ctx, "/everything", params.values().Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TopHeadlines fetches breaking headlines
func (c *Client) TopHeadlines(ctx context.Context, params HeadlinesParams) (*Response, error) {
	var resp Response
	if err := c.get(ctx, "/top-headlines", params.values().Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Sources lists the outlets the API indexes
func (c *Client) Sources(ctx context.Context, params SourcesParams) (*SourcesResponse, error) {
	var resp SourcesResponse
	if err := c.get(ctx, "/sources", params.values().Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path, query string, out interface{}) error {
	if c.deps.HTTPClient == nil {
		return fmt.Errorf("%s: HTTP client not configured", apiName)
	}

	endpoint := c.baseURL + path
	if query != "" {
		endpoint += "?" + query
	}

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint, map[string]string{
		apiKeyHeader: c.apiKey,
		"Accept":     "application/json",
	})
	if err != nil {
		return &coreerrors.NetworkError{API: apiName, Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return &coreerrors.NetworkError{API: apiName, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", apiName, err)
	}
	return nil
}

// errorMessage extracts the message of an error envelope, falling back to the raw body
const maxErrorMessageLen = 200

func errorMessage(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return html.Truncate(strings.TrimSpace(string(body)), maxErrorMessageLen, "")
}
