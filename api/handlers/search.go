// ABOUTME: Search handlers for the Huma API
// ABOUTME: Exposes aggregated search, top headlines and the news source catalogue

package handlers

import (
	"context"
	"net/http"

	"cosmos-api/api/dto/mappers"
	"cosmos-api/api/dto/requests"
	"cosmos-api/api/dto/responses"
	"cosmos-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
	TopHeadlines(ctx context.Context, opts domain.HeadlinesOptions) ([]domain.SearchResult, error)
	Sources(ctx context.Context, opts domain.SourcesOptions) ([]domain.NewsSource, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	service SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search news and the web",
		Description: "Fans the query out to the news API and the web search API, then merges, sorts and truncates the results. An unavailable upstream reduces the result set instead of failing the request.",
		Tags:        []string{"Search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "topHeadlines",
		Method:      http.MethodGet,
		Path:        "/headlines",
		Summary:     "Top headlines",
		Description: "Current headlines from the news API, filtered by country, category or sources",
		Tags:        []string{"Search"},
	}, h.TopHeadlines)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/sources",
		Summary:     "List news sources",
		Description: "News outlets that can be used as search and headline filters",
		Tags:        []string{"Sources"},
	}, h.Sources)
}

// SearchOutput defines the output for the search and headlines operations
type SearchOutput struct {
	Body responses.SearchResponse
}

// SourcesOutput defines the output for the sources operation
type SourcesOutput struct {
	Body responses.SourcesResponse
}

// Search handles GET /search
func (h *SearchHandler) Search(ctx context.Context, input *requests.SearchRequest) (*SearchOutput, error) {
	results, err := h.service.Search(ctx, input.Query, input.Options())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: mappers.ToSearchResponse(input.Query, results)}, nil
}

// TopHeadlines handles GET /headlines
func (h *SearchHandler) TopHeadlines(ctx context.Context, input *requests.HeadlinesRequest) (*SearchOutput, error) {
	results, err := h.service.TopHeadlines(ctx, input.Options())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: mappers.ToSearchResponse("", results)}, nil
}

// Sources handles GET /sources
func (h *SearchHandler) Sources(ctx context.Context, input *requests.SourcesRequest) (*SourcesOutput, error) {
	sources, err := h.service.Sources(ctx, input.Options())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SourcesOutput{Body: mappers.ToSourcesResponse(sources)}, nil
}
