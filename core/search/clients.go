// ABOUTME: Upstream client contracts consumed by the search service
// ABOUTME: Satisfied by the newsapi and perplexity clients and by test fakes

package search

import (
	"context"

	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
)

// NewsClient is the structured article search upstream
type NewsClient interface {
	SearchEverything(ctx context.Context, params newsapi.EverythingParams) (*newsapi.Response, error)
	TopHeadlines(ctx context.Context, params newsapi.HeadlinesParams) (*newsapi.Response, error)
	Sources(ctx context.Context, params newsapi.SourcesParams) (*newsapi.SourcesResponse, error)
}

// WebSearchClient is the conversational web search upstream
type WebSearchClient interface {
	SearchNews(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error)
	SearchBlogs(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error)
	SearchGeneral(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error)
}

var (
	_ NewsClient      = (*newsapi.Client)(nil)
	_ WebSearchClient = (*perplexity.Client)(nil)
)
