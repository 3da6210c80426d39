// ABOUTME: Mappers for converting search domain models to API DTOs
// ABOUTME: Formats timestamps and guarantees non-nil lists in responses

package mappers

import (
	"time"

	"cosmos-api/api/dto/responses"
	"cosmos-api/core/domain"
)

// ToSearchResultResponse converts a domain SearchResult to its DTO
func ToSearchResultResponse(r domain.SearchResult) responses.SearchResultResponse {
	return responses.SearchResultResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
		PublishedAt: formatTime(r.PublishedAt),
		Source:      r.Source,
		Type:        string(r.Type),
		Author:      r.Author,
		Content:     r.Content,
	}
}

// ToSearchResponse converts a result list; query is empty for headlines
func ToSearchResponse(query string, results []domain.SearchResult) responses.SearchResponse {
	out := make([]responses.SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, ToSearchResultResponse(r))
	}
	return responses.SearchResponse{
		Query:   query,
		Count:   len(out),
		Results: out,
	}
}

// ToSourcesResponse converts the source catalogue
func ToSourcesResponse(sources []domain.NewsSource) responses.SourcesResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, responses.SourceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			URL:         s.URL,
			Category:    s.Category,
			Language:    s.Language,
			Country:     s.Country,
		})
	}
	return responses.SourcesResponse{
		Count:   len(out),
		Sources: out,
	}
}

// formatTime renders t as RFC 3339 in UTC; the zero time renders as ""
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
