// ABOUTME: Client for the conversational web search API
// ABOUTME: Builds category prompt templates and posts chat completion requests

package perplexity

import (
	"bytes"
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
	// DefaultBaseURL is the public completion endpoint host
	DefaultBaseURL = "https://api.perplexity.ai"
	// DefaultSmallModel serves news and blog searches
	DefaultSmallModel = "sonar"
	// DefaultLargeModel serves general searches
	DefaultLargeModel = "sonar-pro"

	apiName = "perplexity"

	systemPrompt = "You are a helpful assistant that searches for and summarizes current information from the web. Provide accurate, up-to-date information with proper citations."
)

// Config configures a Client
type Config struct {
	APIKey     string
	BaseURL    string
	SmallModel string
	LargeModel string
}

// Client talks to the conversational search API
type Client struct {
	deps       interfaces.Dependencies
	apiKey     string
	baseURL    string
	smallModel string
	largeModel string
}

// NewClient creates a conversational search client
func NewClient(cfg Config, deps interfaces.Dependencies) *Client {
	c := &Client{
		deps:       deps,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		smallModel: cfg.SmallModel,
		largeModel: cfg.LargeModel,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.smallModel == "" {
		c.smallModel = DefaultSmallModel
	}
	if c.largeModel == "" {
		c.largeModel = DefaultLargeModel
	}
	return c
}

// NewParams returns request parameters with the API defaults for query
func (c *Client) NewParams(query string) Params {
	return Params{
		Query:            query,
		Model:            c.smallModel,
		MaxTokens:        1000,
		Temperature:      0.2,
		TopP:             0.9,
		TopK:             0,
		Stream:           false,
		PresencePenalty:  0,
		FrequencyPenalty: 1,
		ReturnCitations:  true,
	}
}

// Search posts a single chat completion and returns the payload unmodified
func (c *Client) Search(ctx context.Context, params Params) (*Response, error) {
	if c.deps.HTTPClient == nil {
		return nil, fmt.Errorf("%s: HTTP client not configured", apiName)
	}

	payload, err := json.Marshal(request{
		Model: params.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: params.Query},
		},
		MaxTokens:          params.MaxTokens,
		Temperature:        params.Temperature,
		TopP:               params.TopP,
		TopK:               params.TopK,
		Stream:             params.Stream,
		PresencePenalty:    params.PresencePenalty,
		FrequencyPenalty:   params.FrequencyPenalty,
		ReturnCitations:    params.ReturnCitations,
		SearchDomainFilter: params.SearchDomainFilter,
		SearchRecency:      params.SearchRecency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", apiName, err)
	}

	resp, err := c.deps.HTTPClient.Post(ctx, c.baseURL+"/chat/completions", bytes.NewReader(payload), map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	})
	if err != nil {
		return nil, &coreerrors.NetworkError{API: apiName, Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.NetworkError{API: apiName, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(body),
		}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", apiName, err)
	}
	return &out, nil
}

// SearchNews asks for recent news coverage of query
func (c *Client) SearchNews(ctx context.Context, query string, opts CategoryOptions) (*Response, error) {
	params := c.NewParams(fmt.Sprintf("Find the latest news about: %s. Please provide recent news articles with sources and publication dates.", query))
	params.Temperature = 0.1
	params.MaxTokens = orDefault(opts.MaxTokens, 1000)
	params.SearchRecency = orDefaultString(opts.Recency, "week")
	params.SearchDomainFilter = opts.Domains
	return c.Search(ctx, params)
}

// SearchBlogs asks for in-depth blog coverage of query
func (c *Client) SearchBlogs(ctx context.Context, query string, opts CategoryOptions) (*Response, error) {
	params := c.NewParams(fmt.Sprintf("Find recent blog posts and articles about: %s. Focus on in-depth analysis, opinions, and detailed coverage from blogs and online publications.", query))
	params.Temperature = 0.2
	params.MaxTokens = orDefault(opts.MaxTokens, 1200)
	params.SearchRecency = orDefaultString(opts.Recency, "week")
	params.SearchDomainFilter = opts.Domains
	return c.Search(ctx, params)
}

// SearchGeneral asks the large model for broad coverage of query
func (c *Client) SearchGeneral(ctx context.Context, query string, opts CategoryOptions) (*Response, error) {
	params := c.NewParams(fmt.Sprintf("Search for comprehensive information about: %s. Include various types of content like articles, discussions, reports, and other relevant online content.", query))
	params.Model = c.largeModel
	params.Temperature = 0.3
	params.MaxTokens = orDefault(opts.MaxTokens, 1500)
	params.SearchRecency = orDefaultString(opts.Recency, "month")
	params.SearchDomainFilter = opts.Domains
	return c.Search(ctx, params)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// errorMessage pulls the message out of an OpenAI style error body
const maxErrorMessageLen = 200

func errorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Detail != "" {
			return envelope.Detail
		}
	}
	return html.Truncate(strings.TrimSpace(string(body)), maxErrorMessageLen, "")
}
