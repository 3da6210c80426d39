package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cosmos-api/core/domain"
	coreerrors "cosmos-api/core/errors"
	"cosmos-api/core/interfaces"
	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
	"cosmos-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newsPage(n int) *newsapi.Response {
	resp := &newsapi.Response{Status: "ok", TotalResults: n}
	for i := 0; i < n; i++ {
		resp.Articles = append(resp.Articles, newsapi.Article{
			Source:      newsapi.ArticleSource{Name: "Wire"},
			Title:       fmt.Sprintf("Headline number %d", i),
			URL:         fmt.Sprintf("https://wire.example/%d", i),
			PublishedAt: fixedNow.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339),
		})
	}
	return resp
}

func citationAnswer(n int) *perplexity.Response {
	var lines []string
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("Web finding number %d", i), fmt.Sprintf("https://site%d.example/post", i))
	}
	return answer(strings.Join(lines, "\n"))
}

func newTestService(news NewsClient, web WebSearchClient, opts ...Option) *SearchService {
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	svc := NewSearchService(deps, news, web, append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
	svc.newID = sequentialIDs()
	return svc
}

func TestNewSearchService(t *testing.T) {
	svc := NewSearchService(interfaces.Dependencies{}, nil, nil)

	require.NotNil(t, svc)
	assert.Equal(t, DefaultCacheTTL, svc.cacheTTL)
	assert.NotNil(t, svc.now)
}

func TestSearch_Validation(t *testing.T) {
	svc := newTestService(&fakeNewsClient{}, &fakeWebClient{})

	tests := []struct {
		name  string
		query string
		opts  domain.SearchOptions
	}{
		{name: "empty query", query: ""},
		{name: "blank query", query: "   \t"},
		{name: "query too long", query: strings.Repeat("q", MaxQueryLength+1)},
		{name: "unknown type", query: "go", opts: domain.SearchOptions{Type: "videos"}},
		{name: "unknown recency", query: "go", opts: domain.SearchOptions{Recency: "year"}},
		{name: "unknown sort", query: "go", opts: domain.SearchOptions{SortBy: "random"}},
		{name: "negative limit", query: "go", opts: domain.SearchOptions{Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(context.Background(), tt.query, tt.opts)

			require.Error(t, err)
			assert.True(t, coreerrors.IsValidation(err), "expected validation error, got %v", err)
			assert.Nil(t, results)
		})
	}
}

func TestSearch_MaxLengthQueryAccepted(t *testing.T) {
	svc := newTestService(&fakeNewsClient{}, &fakeWebClient{})

	_, err := svc.Search(context.Background(), strings.Repeat("é", MaxQueryLength), domain.SearchOptions{})
	assert.NoError(t, err)
}

func TestSearch_RespectsLimit(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return newsPage(30), nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(30), nil
	}}
	svc := newTestService(news, web)

	for _, typ := range []domain.ContentType{domain.ContentTypeAll, domain.ContentTypeNews, domain.ContentTypeBlogs, domain.ContentTypeGeneral} {
		for _, limit := range []int{1, 2, 5, 20, 100} {
			results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: typ, Limit: limit})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(results), limit, "type=%s limit=%d", typ, limit)
		}
	}
}

func TestSearch_LimitAboveNewsPageSize(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		assert.Equal(t, newsapi.MaxPageSize, p.PageSize)
		return newsPage(120), nil
	}}
	svc := newTestService(news, nil)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews, Limit: 150})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 150)
	assert.Len(t, results, 120)
}

func TestSearch_AllSplitsPerSourceQuota(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		assert.Equal(t, 7, p.PageSize)
		return newsPage(30), nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(30), nil
	}}
	svc := newTestService(news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeAll, Limit: 20})
	require.NoError(t, err)

	counts := map[domain.ResultType]int{}
	for _, r := range results {
		counts[r.Type]++
	}
	assert.Equal(t, 7, counts[domain.ResultTypeNews])
	assert.Equal(t, 7, counts[domain.ResultTypeGeneral])
	assert.Len(t, results, 14)
}

func TestSearch_SortedByPublishedAt(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		resp := newsPage(6)
		// shuffle so order comes from the sort, not the upstream
		resp.Articles[0], resp.Articles[4] = resp.Articles[4], resp.Articles[0]
		return resp, nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(3), nil
	}}
	svc := newTestService(news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Limit: 30})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.False(t, results[i].PublishedAt.After(results[i-1].PublishedAt),
			"result %d is newer than result %d", i, i-1)
	}
}

func TestSearch_RelevancyKeepsMergeOrder(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return newsPage(2), nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(2), nil
	}}
	svc := newTestService(news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{SortBy: domain.SortByRelevancy, Limit: 6})
	require.NoError(t, err)
	require.Len(t, results, 4)

	types := []domain.ResultType{results[0].Type, results[1].Type, results[2].Type, results[3].Type}
	assert.Equal(t, []domain.ResultType{
		domain.ResultTypeNews, domain.ResultTypeNews, domain.ResultTypeGeneral, domain.ResultTypeGeneral,
	}, types)
}

func TestSearch_TypeSelectsUpstreams(t *testing.T) {
	tests := []struct {
		typ          domain.ContentType
		wantNews     bool
		wantCategory string
		wantType     domain.ResultType
	}{
		{typ: domain.ContentTypeNews, wantNews: true, wantType: domain.ResultTypeNews},
		{typ: domain.ContentTypeBlogs, wantCategory: "blogs", wantType: domain.ResultTypeBlog},
		{typ: domain.ContentTypeGeneral, wantCategory: "general", wantType: domain.ResultTypeGeneral},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			var categories []string
			news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
				return newsPage(3), nil
			}}
			web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
				categories = append(categories, category)
				return citationAnswer(3), nil
			}}
			svc := newTestService(news, web)

			results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: tt.typ})
			require.NoError(t, err)
			require.NotEmpty(t, results)

			for _, r := range results {
				assert.Equal(t, tt.wantType, r.Type)
			}
			if tt.wantNews {
				assert.Equal(t, 1, news.callCount())
				assert.Empty(t, categories)
			} else {
				assert.Zero(t, news.callCount())
				assert.Equal(t, []string{tt.wantCategory}, categories)
			}
		})
	}
}

func TestSearch_NewsParams(t *testing.T) {
	var got newsapi.EverythingParams
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		got = p
		return newsPage(0), nil
	}}
	svc := newTestService(news, nil)

	_, err := svc.Search(context.Background(), "  climate  ", domain.SearchOptions{
		Type:     domain.ContentTypeNews,
		Recency:  domain.RecencyWeek,
		Sources:  []string{"bbc-news", "reuters"},
		Domains:  []string{"bbc.co.uk", "reuters.com"},
		Language: "de",
		SortBy:   domain.SortByPopularity,
		Limit:    90,
	})
	require.NoError(t, err)

	assert.Equal(t, "climate", got.Query)
	assert.Equal(t, "bbc-news,reuters", got.Sources)
	assert.Equal(t, "bbc.co.uk,reuters.com", got.Domains)
	assert.Equal(t, "2026-03-07", got.From)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, "popularity", got.SortBy)
	assert.Equal(t, 90, got.PageSize)
}

func TestSearch_WebOptions(t *testing.T) {
	var got perplexity.CategoryOptions
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		got = opts
		assert.Equal(t, "rust", query)
		return answer(""), nil
	}}
	svc := newTestService(nil, web)

	_, err := svc.Search(context.Background(), "rust", domain.SearchOptions{
		Type:    domain.ContentTypeGeneral,
		Recency: domain.RecencyDay,
		Domains: []string{"rust-lang.org"},
	})
	require.NoError(t, err)

	assert.Equal(t, "day", got.Recency)
	assert.Equal(t, []string{"rust-lang.org"}, got.Domains)
}

func TestSearch_PartialFailure(t *testing.T) {
	logger := &mockLogger{}
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return nil, &coreerrors.ExternalAPIError{API: "newsapi", StatusCode: 500, Message: "boom"}
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(2), nil
	}}
	svc := NewSearchService(interfaces.Dependencies{Logger: logger}, news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeAll})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, domain.ResultTypeGeneral, r.Type)
	}
	assert.Equal(t, 1, logger.count("warn"))
}

func TestSearch_UnexpectedFailureLoggedAsError(t *testing.T) {
	logger := &mockLogger{}
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return nil, errors.New("decode: unexpected EOF")
	}}
	svc := NewSearchService(interfaces.Dependencies{Logger: logger}, news, nil)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, logger.count("warn"))
	assert.Equal(t, 1, logger.count("error"))
}

func TestSearch_AllUpstreamsFail(t *testing.T) {
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return nil, &coreerrors.NetworkError{API: "newsapi", Err: errors.New("connection refused")}
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return nil, &coreerrors.ExternalAPIError{API: "perplexity", StatusCode: 429, Message: "slow down"}
	}}
	svc := newTestService(news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{})

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_NilClients(t *testing.T) {
	svc := newTestService(nil, nil)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_FansOutConcurrently(t *testing.T) {
	newsStarted := make(chan struct{})
	webStarted := make(chan struct{})

	wait := func(ch chan struct{}) error {
		select {
		case <-ch:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("peer never started")
		}
	}

	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		close(newsStarted)
		if err := wait(webStarted); err != nil {
			return nil, err
		}
		return newsPage(1), nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		close(webStarted)
		if err := wait(newsStarted); err != nil {
			return nil, err
		}
		return citationAnswer(1), nil
	}}
	svc := newTestService(news, web)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_CachesSuccessfulContributions(t *testing.T) {
	cache := newMockCache()
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return newsPage(3), nil
	}}
	svc := NewSearchService(interfaces.Dependencies{Cache: cache}, news, nil, WithCacheTTL(time.Minute))

	first, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})
	require.NoError(t, err)

	assert.Equal(t, 1, news.callCount())
	assert.Equal(t, 1, cache.size())
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].URL, second[0].URL)
	assert.True(t, first[0].PublishedAt.Equal(second[0].PublishedAt))

	for _, ttl := range cache.ttls {
		assert.Equal(t, time.Minute, ttl)
	}
}

func TestSearch_CacheHitsGetFreshIDs(t *testing.T) {
	cache := newMockCache()
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		return citationAnswer(2), nil
	}}
	svc := NewSearchService(interfaces.Dependencies{Cache: cache}, nil, web, WithCacheTTL(time.Minute))
	svc.newID = sequentialIDs()

	first, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeBlogs})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeBlogs})
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	seen := map[string]bool{}
	for _, r := range append(first, second...) {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.True(t, strings.HasPrefix(r.ID, "blogs-"), r.ID)
	}
}

func TestSearch_DoesNotCacheFailures(t *testing.T) {
	cache := newMockCache()
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return nil, errors.New("down")
	}}
	svc := NewSearchService(interfaces.Dependencies{Cache: cache}, news, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, news.callCount())
	assert.Zero(t, cache.size())
}

func TestSearch_CacheErrorsAreIgnored(t *testing.T) {
	cache := newMockCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return newsPage(2), nil
	}}
	svc := NewSearchService(interfaces.Dependencies{Cache: cache}, news, nil)

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_CacheDisabled(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero ttl", opts: []Option{WithCacheTTL(0)}},
		{name: "flag off", opts: []Option{WithFlags(featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
			featureflags.NewsSearchEnabled: true,
			featureflags.CacheEnabled:      false,
		}))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMockCache()
			news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
				return newsPage(1), nil
			}}
			svc := NewSearchService(interfaces.Dependencies{Cache: cache}, news, nil, tt.opts...)

			for i := 0; i < 2; i++ {
				_, err := svc.Search(context.Background(), "go", domain.SearchOptions{Type: domain.ContentTypeNews})
				require.NoError(t, err)
			}

			assert.Equal(t, 2, news.callCount())
			assert.Zero(t, cache.size())
		})
	}
}

func TestSearch_FeatureFlagsDisableSources(t *testing.T) {
	flags := featureflags.NewStaticManager(featureflags.Defaults())
	flags.SetEnabled(featureflags.WebSearchEnabled, false)

	webCalled := false
	news := &fakeNewsClient{everythingFunc: func(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
		return newsPage(2), nil
	}}
	web := &fakeWebClient{searchFunc: func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
		webCalled = true
		return citationAnswer(2), nil
	}}
	svc := newTestService(news, web, WithFlags(flags))

	results, err := svc.Search(context.Background(), "go", domain.SearchOptions{})
	require.NoError(t, err)

	assert.False(t, webCalled)
	assert.Len(t, results, 2)
}

func TestSearch_FlagsFromContext(t *testing.T) {
	flags := featureflags.NewStaticManager(featureflags.Defaults())
	flags.SetEnabled(featureflags.NewsSearchEnabled, false)
	ctx := featureflags.WithManager(context.Background(), flags)

	news := &fakeNewsClient{}
	svc := newTestService(news, &fakeWebClient{})

	_, err := svc.Search(ctx, "go", domain.SearchOptions{Type: domain.ContentTypeNews})
	require.NoError(t, err)
	assert.Zero(t, news.callCount())
}

func TestTopHeadlines(t *testing.T) {
	var got newsapi.HeadlinesParams
	news := &fakeNewsClient{headlinesFunc: func(ctx context.Context, p newsapi.HeadlinesParams) (*newsapi.Response, error) {
		got = p
		return newsPage(4), nil
	}}
	svc := newTestService(news, nil)

	results, err := svc.TopHeadlines(context.Background(), domain.HeadlinesOptions{
		Country:  "us",
		Category: "technology",
		Limit:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "us", got.Country)
	assert.Equal(t, "technology", got.Category)
	assert.Equal(t, 3, got.PageSize)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, strings.HasPrefix(r.ID, "headline-"))
		assert.Equal(t, domain.ResultTypeNews, r.Type)
	}
}

func TestTopHeadlines_DefaultsAndCap(t *testing.T) {
	var sizes []int
	news := &fakeNewsClient{headlinesFunc: func(ctx context.Context, p newsapi.HeadlinesParams) (*newsapi.Response, error) {
		sizes = append(sizes, p.PageSize)
		assert.Equal(t, "bbc-news,cnn", p.Sources)
		return newsPage(0), nil
	}}
	svc := newTestService(news, nil)

	_, err := svc.TopHeadlines(context.Background(), domain.HeadlinesOptions{Sources: []string{"bbc-news", "cnn"}})
	require.NoError(t, err)
	_, err = svc.TopHeadlines(context.Background(), domain.HeadlinesOptions{Sources: []string{"bbc-news", "cnn"}, Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, []int{20, 100}, sizes)
}

func TestTopHeadlines_FailureYieldsEmptyList(t *testing.T) {
	news := &fakeNewsClient{headlinesFunc: func(ctx context.Context, p newsapi.HeadlinesParams) (*newsapi.Response, error) {
		return nil, &coreerrors.ExternalAPIError{API: "newsapi", StatusCode: 401, Message: "bad key"}
	}}
	svc := newTestService(news, nil)

	results, err := svc.TopHeadlines(context.Background(), domain.HeadlinesOptions{})

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestTopHeadlines_InvalidLimit(t *testing.T) {
	svc := newTestService(&fakeNewsClient{}, nil)

	_, err := svc.TopHeadlines(context.Background(), domain.HeadlinesOptions{Limit: -5})
	assert.True(t, coreerrors.IsValidation(err))
}

func TestSources(t *testing.T) {
	var got newsapi.SourcesParams
	news := &fakeNewsClient{sourcesFunc: func(ctx context.Context, p newsapi.SourcesParams) (*newsapi.SourcesResponse, error) {
		got = p
		return &newsapi.SourcesResponse{Status: "ok", Sources: []newsapi.Source{
			{ID: "bbc-news", Name: "BBC News", Category: "general", Language: "en", Country: "gb"},
		}}, nil
	}}
	svc := newTestService(news, nil)

	sources, err := svc.Sources(context.Background(), domain.SourcesOptions{Category: "general", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, "general", got.Category)
	assert.Equal(t, "en", got.Language)
	require.Len(t, sources, 1)
	assert.Equal(t, "BBC News", sources[0].Name)
	assert.Equal(t, "gb", sources[0].Country)
}

func TestSources_PropagatesErrors(t *testing.T) {
	news := &fakeNewsClient{sourcesFunc: func(ctx context.Context, p newsapi.SourcesParams) (*newsapi.SourcesResponse, error) {
		return nil, &coreerrors.ExternalAPIError{API: "newsapi", StatusCode: 503, Message: "maintenance"}
	}}
	svc := newTestService(news, nil)

	_, err := svc.Sources(context.Background(), domain.SourcesOptions{})

	require.Error(t, err)
	assert.True(t, coreerrors.IsExternalAPI(err))

	_, err = newTestService(nil, nil).Sources(context.Background(), domain.SourcesOptions{})
	assert.Error(t, err)
}
