// ABOUTME: Search service fans one query out to the news and web search upstreams
// ABOUTME: Normalizes, merges, sorts and truncates their results into one list

package search

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"cosmos-api/core/domain"
	coreerrors "cosmos-api/core/errors"
	"cosmos-api/core/interfaces"
	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
	"cosmos-api/pkg/featureflags"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxQueryLength bounds the query in characters
	MaxQueryLength = 500

	// DefaultCacheTTL is how long a successful contribution is reused
	DefaultCacheTTL = 5 * time.Minute

	sourceNews = "news"
	sourceWeb  = "web"
)

var errNewsClientMissing = errors.New("news client not configured")

// SearchService aggregates the upstream search clients
type SearchService struct {
	deps     interfaces.Dependencies
	news     NewsClient
	web      WebSearchClient
	flags    featureflags.Manager
	cacheTTL time.Duration
	now      func() time.Time
	newID    func(prefix string) string
}

// Option configures a SearchService
type Option func(*SearchService)

// WithCacheTTL sets the contribution cache lifetime; 0 disables caching
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *SearchService) {
		s.cacheTTL = ttl
	}
}

// WithFlags sets the feature flag manager consulted per call. Without it the
// manager carried by the request context is used.
func WithFlags(flags featureflags.Manager) Option {
	return func(s *SearchService) {
		s.flags = flags
	}
}

// WithClock overrides the time source used for recency windows and parse times
func WithClock(now func() time.Time) Option {
	return func(s *SearchService) {
		s.now = now
	}
}

// NewSearchService creates a new search service instance. Either client may be
// nil, in which case its contributions are always empty.
func NewSearchService(deps interfaces.Dependencies, news NewsClient, web WebSearchClient, opts ...Option) *SearchService {
	s := &SearchService{
		deps:     deps,
		news:     news,
		web:      web,
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
		newID:    newResultID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateQuery checks a raw query and returns it trimmed
func ValidateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", coreerrors.NewValidationError("q", "query cannot be empty")
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return "", coreerrors.NewValidationError("q", "query cannot exceed %d characters", MaxQueryLength)
	}
	return query, nil
}

// Search runs query against every upstream the options tap and returns at most
// opts.Limit results. Upstream failures shrink the result set; only invalid
// input returns an error.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	query, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	perSource := opts.PerSourceLimit()
	now := s.now()

	var newsResults, webResults []domain.SearchResult
	var g errgroup.Group

	if opts.Type.IncludesNews() {
		g.Go(func() error {
			newsResults = s.contribute(ctx, sourceNews, sourceNews, featureflags.NewsSearchEnabled,
				contributionKey(sourceNews, query, opts, perSource), perSource,
				func(ctx context.Context) ([]domain.SearchResult, error) {
					return s.searchNews(ctx, query, opts, perSource, now)
				})
			return nil
		})
	}

	if category, ok := opts.Type.WebCategory(); ok {
		source := sourceWeb + ":" + string(category)
		g.Go(func() error {
			webResults = s.contribute(ctx, source, string(category), featureflags.WebSearchEnabled,
				contributionKey(source, query, opts, perSource), perSource,
				func(ctx context.Context) ([]domain.SearchResult, error) {
					return s.searchWeb(ctx, query, category, opts, now)
				})
			return nil
		})
	}

	// Contributions never fail the group
	_ = g.Wait()

	merged := make([]domain.SearchResult, 0, len(newsResults)+len(webResults))
	merged = append(merged, newsResults...)
	merged = append(merged, webResults...)

	sortResults(merged, opts.SortBy)
	if len(merged) > opts.Limit {
		merged = merged[:opts.Limit]
	}

	s.deps.Log().Info("Search completed", map[string]interface{}{
		"query_length": utf8.RuneCountInString(query),
		"type":         string(opts.Type),
		"news_results": len(newsResults),
		"web_results":  len(webResults),
		"returned":     len(merged),
	})

	return merged, nil
}

// contribute produces one source's list. Every failure folds into an empty list.
func (s *SearchService) contribute(
	ctx context.Context,
	source string,
	idPrefix string,
	flag featureflags.FeatureFlag,
	cacheKey string,
	perSource int,
	fetch func(context.Context) ([]domain.SearchResult, error),
) []domain.SearchResult {
	if !s.enabled(ctx, flag) {
		s.deps.Log().Debug("Search source disabled", map[string]interface{}{
			"source": source,
			"flag":   string(flag),
		})
		return nil
	}

	if cached, ok := s.loadContribution(ctx, cacheKey, idPrefix); ok {
		return truncate(cached, perSource)
	}

	results, err := fetch(ctx)
	if err != nil {
		fields := map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		}
		if coreerrors.IsUpstream(err) {
			s.deps.Log().Warn("Search source failed", fields)
		} else {
			s.deps.Log().Error("Search source failed unexpectedly", fields)
		}
		return nil
	}

	results = truncate(results, perSource)
	s.storeContribution(ctx, cacheKey, results)
	return results
}

func (s *SearchService) searchNews(ctx context.Context, query string, opts domain.SearchOptions, perSource int, now time.Time) ([]domain.SearchResult, error) {
	if s.news == nil {
		return nil, nil
	}

	resp, err := s.news.SearchEverything(ctx, newsapi.EverythingParams{
		Query:    query,
		Sources:  strings.Join(opts.Sources, ","),
		Domains:  strings.Join(opts.Domains, ","),
		From:     dateFromRecency(now, opts.Recency),
		Language: opts.Language,
		SortBy:   string(opts.SortBy),
		PageSize: newsapi.ClampPageSize(perSource),
	})
	if err != nil {
		return nil, err
	}

	return articlesToResults(resp.Articles, sourceNews, s.newID), nil
}

func (s *SearchService) searchWeb(ctx context.Context, query string, category domain.ContentType, opts domain.SearchOptions, now time.Time) ([]domain.SearchResult, error) {
	if s.web == nil {
		return nil, nil
	}

	copts := perplexity.CategoryOptions{
		Recency: string(opts.Recency),
		Domains: opts.Domains,
	}

	var (
		resp *perplexity.Response
		err  error
	)
	switch category {
	case domain.ContentTypeBlogs:
		resp, err = s.web.SearchBlogs(ctx, query, copts)
	case domain.ContentTypeNews:
		resp, err = s.web.SearchNews(ctx, query, copts)
	default:
		resp, err = s.web.SearchGeneral(ctx, query, copts)
	}
	if err != nil {
		return nil, err
	}

	return parseCitations(resp.Answer(), query, category, now, s.newID), nil
}

// TopHeadlines returns current headlines. A failing upstream yields an empty list.
func (s *SearchService) TopHeadlines(ctx context.Context, opts domain.HeadlinesOptions) ([]domain.SearchResult, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := []domain.SearchResult{}
	if s.news == nil || !s.enabled(ctx, featureflags.NewsSearchEnabled) {
		return results, nil
	}

	resp, err := s.news.TopHeadlines(ctx, newsapi.HeadlinesParams{
		Country:  opts.Country,
		Category: opts.Category,
		Sources:  strings.Join(opts.Sources, ","),
		PageSize: opts.PageSize(),
	})
	if err != nil {
		s.deps.Log().Warn("Headlines lookup failed", map[string]interface{}{
			"country":  opts.Country,
			"category": opts.Category,
			"error":    err.Error(),
		})
		return results, nil
	}

	results = articlesToResults(resp.Articles, "headline", s.newID)
	return truncate(results, opts.Limit), nil
}

// Sources lists the news source catalogue. Errors propagate.
func (s *SearchService) Sources(ctx context.Context, opts domain.SourcesOptions) ([]domain.NewsSource, error) {
	if s.news == nil {
		return nil, errNewsClientMissing
	}

	resp, err := s.news.Sources(ctx, newsapi.SourcesParams{
		Category: opts.Category,
		Language: opts.Language,
		Country:  opts.Country,
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list sources")
	}

	sources := make([]domain.NewsSource, 0, len(resp.Sources))
	for _, src := range resp.Sources {
		sources = append(sources, sourceToDomain(src))
	}
	return sources, nil
}

func (s *SearchService) enabled(ctx context.Context, flag featureflags.FeatureFlag) bool {
	if s.flags != nil {
		return s.flags.IsEnabled(ctx, flag)
	}
	return featureflags.IsEnabled(ctx, flag)
}

func (s *SearchService) cachingEnabled(ctx context.Context) bool {
	return s.deps.Cache != nil && s.cacheTTL > 0 && s.enabled(ctx, featureflags.CacheEnabled)
}

func truncate(results []domain.SearchResult, n int) []domain.SearchResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}
