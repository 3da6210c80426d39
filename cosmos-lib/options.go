// ABOUTME: Configuration options for the COSMOS library client
// ABOUTME: Functional options for the client and for individual searches

package cosmos

import (
	"time"

	"cosmos-api/core/domain"
	"cosmos-api/core/interfaces"
	"cosmos-api/pkg/config"
	"cosmos-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithNewsAPIKey sets the news API credential
func WithNewsAPIKey(key string) Option {
	return func(c *Config) error {
		c.NewsAPIKey = key
		return nil
	}
}

// WithPerplexityAPIKey sets the web search API credential
func WithPerplexityAPIKey(key string) Option {
	return func(c *Config) error {
		c.PerplexityAPIKey = key
		return nil
	}
}

// WithBaseURLs points the upstream clients at other hosts; empty values keep the defaults
func WithBaseURLs(newsAPI, perplexity string) Option {
	return func(c *Config) error {
		if newsAPI != "" {
			c.NewsAPIBaseURL = newsAPI
		}
		if perplexity != "" {
			c.PerplexityBaseURL = perplexity
		}
		return nil
	}
}

// WithModels selects the web search models for cheap and thorough categories
func WithModels(small, large string) Option {
	return func(c *Config) error {
		if small == "" || large == "" {
			return NewError(ErrorTypeConfiguration, "model names cannot be empty")
		}
		c.SmallModel = small
		c.LargeModel = large
		return nil
	}
}

// WithCacheTTL sets how long upstream contributions are reused; 0 disables caching
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithFeatureFlags sets the manager consulted for per-source toggles
func WithFeatureFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithTimeout bounds every upstream call made by the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// FromConfig copies credentials, upstream endpoints and search tuning from an
// application configuration
func FromConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "configuration is nil")
		}
		c.NewsAPIKey = cfg.NewsAPI.APIKey
		c.NewsAPIBaseURL = cfg.NewsAPI.BaseURL
		c.PerplexityAPIKey = cfg.Perplexity.APIKey
		c.PerplexityBaseURL = cfg.Perplexity.BaseURL
		c.SmallModel = cfg.Perplexity.SmallModel
		c.LargeModel = cfg.Perplexity.LargeModel
		c.CacheTTL = cfg.Search.CacheTTL
		c.Timeout = cfg.Search.UpstreamTimeout
		return nil
	}
}

// SearchOption adjusts a single search
type SearchOption func(*domain.SearchOptions)

// WithType restricts results to one content type: all, news, blogs or general
func WithType(contentType string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Type = domain.ContentType(contentType)
	}
}

// WithRecency limits results to the last hour, day, week or month
func WithRecency(recency string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Recency = domain.Recency(recency)
	}
}

// WithSources restricts news results to the given source IDs
func WithSources(sources ...string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Sources = append(o.Sources, sources...)
	}
}

// WithDomains restricts results to the given domains
func WithDomains(domains ...string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Domains = append(o.Domains, domains...)
	}
}

// WithLanguage sets the news language filter
func WithLanguage(language string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Language = language
	}
}

// WithSortBy sets the ordering: publishedAt, relevancy or popularity
func WithSortBy(sortBy string) SearchOption {
	return func(o *domain.SearchOptions) {
		o.SortBy = domain.SortBy(sortBy)
	}
}

// WithLimit caps the number of results
func WithLimit(limit int) SearchOption {
	return func(o *domain.SearchOptions) {
		o.Limit = limit
	}
}

// HeadlinesOption adjusts a headlines lookup
type HeadlinesOption func(*domain.HeadlinesOptions)

// WithCountry filters headlines by two-letter country code
func WithCountry(country string) HeadlinesOption {
	return func(o *domain.HeadlinesOptions) {
		o.Country = country
	}
}

// WithCategory filters headlines by news category
func WithCategory(category string) HeadlinesOption {
	return func(o *domain.HeadlinesOptions) {
		o.Category = category
	}
}

// WithHeadlineSources restricts headlines to the given source IDs
func WithHeadlineSources(sources ...string) HeadlinesOption {
	return func(o *domain.HeadlinesOptions) {
		o.Sources = append(o.Sources, sources...)
	}
}

// WithHeadlineLimit caps the number of headlines
func WithHeadlineLimit(limit int) HeadlinesOption {
	return func(o *domain.HeadlinesOptions) {
		o.Limit = limit
	}
}

// SourcesFilter narrows the source catalogue
type SourcesFilter struct {
	Category string
	Language string
	Country  string
}
