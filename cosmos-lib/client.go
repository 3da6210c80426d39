// ABOUTME: Main client for the COSMOS library providing aggregated news and web search
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package cosmos

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"cosmos-api/core/domain"
	"cosmos-api/core/interfaces"
	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
	"cosmos-api/core/search"
	"cosmos-api/pkg/config"
	"cosmos-api/pkg/featureflags"
)

// Client is the main entry point for the COSMOS library
type Client struct {
	service *search.SearchService
	deps    interfaces.Dependencies
	config  Config

	mu     sync.RWMutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// Upstream credentials; at least one is required
	NewsAPIKey       string
	PerplexityAPIKey string

	NewsAPIBaseURL    string
	PerplexityBaseURL string
	SmallModel        string
	LargeModel        string

	// Dependencies; defaults are created for any left nil
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	// Flags overrides the feature flags found on the request context
	Flags featureflags.Manager

	// CacheTTL of 0 disables caching
	CacheTTL time.Duration

	// Timeout applies to the default HTTP client only
	Timeout time.Duration

	// closers are resources created by options and released by Close
	closers []io.Closer
}

// NewClient creates a new COSMOS client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			closeAll(cfg.closers)
			return nil, err
		}
	}

	if err := WithDefaultDependencies()(&cfg); err != nil {
		closeAll(cfg.closers)
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		closeAll(cfg.closers)
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: cfg.HTTPClient,
		Cache:      cfg.Cache,
		Logger:     cfg.Logger,
	}

	serviceOpts := []search.Option{search.WithCacheTTL(cfg.CacheTTL)}
	if cfg.Flags != nil {
		serviceOpts = append(serviceOpts, search.WithFlags(cfg.Flags))
	}

	// A missing key leaves its source nil so it contributes nothing
	var news search.NewsClient
	if cfg.NewsAPIKey != "" {
		news = newsapi.NewClient(newsapi.Config{
			APIKey:  cfg.NewsAPIKey,
			BaseURL: cfg.NewsAPIBaseURL,
		}, deps)
	}

	var web search.WebSearchClient
	if cfg.PerplexityAPIKey != "" {
		web = perplexity.NewClient(perplexity.Config{
			APIKey:     cfg.PerplexityAPIKey,
			BaseURL:    cfg.PerplexityBaseURL,
			SmallModel: cfg.SmallModel,
			LargeModel: cfg.LargeModel,
		}, deps)
	}

	return &Client{
		service: search.NewSearchService(deps, news, web, serviceOpts...),
		deps:    deps,
		config:  cfg,
	}, nil
}

func defaultConfig() Config {
	d := config.Default()
	return Config{
		NewsAPIBaseURL:    d.NewsAPI.BaseURL,
		PerplexityBaseURL: d.Perplexity.BaseURL,
		SmallModel:        d.Perplexity.SmallModel,
		LargeModel:        d.Perplexity.LargeModel,
		CacheTTL:          search.DefaultCacheTTL,
		Timeout:           defaultTimeout,
	}
}

func validateConfig(cfg *Config) error {
	if cfg.NewsAPIKey == "" && cfg.PerplexityAPIKey == "" {
		return NewError(ErrorTypeConfiguration, "at least one of the news or web search API keys is required")
	}
	if cfg.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}
	return nil
}

// Close releases caches and log files created by options. It is safe to call twice.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return closeAll(c.config.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, cl := range closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Client) checkOpen() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Search queries every configured source concurrently and returns the merged
// results. Upstream failures shrink the result set rather than failing the call.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) ([]*SearchResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	var options domain.SearchOptions
	for _, opt := range opts {
		opt(&options)
	}

	results, err := c.service.Search(ctx, query, options)
	if err != nil {
		return nil, translateError(err)
	}
	return convertResults(results), nil
}

// TopHeadlines returns the current top stories from the news source
func (c *Client) TopHeadlines(ctx context.Context, opts ...HeadlinesOption) ([]*SearchResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	var options domain.HeadlinesOptions
	for _, opt := range opts {
		opt(&options)
	}

	results, err := c.service.TopHeadlines(ctx, options)
	if err != nil {
		return nil, translateError(err)
	}
	return convertResults(results), nil
}

// Sources lists the news outlets matching filter
func (c *Client) Sources(ctx context.Context, filter SourcesFilter) ([]*Source, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	if c.config.NewsAPIKey == "" {
		return nil, NewError(ErrorTypeConfiguration, "news API key is required to list sources")
	}

	sources, err := c.service.Sources(ctx, domain.SourcesOptions{
		Category: filter.Category,
		Language: filter.Language,
		Country:  filter.Country,
	})
	if err != nil {
		return nil, translateError(err)
	}
	return convertSources(sources), nil
}
