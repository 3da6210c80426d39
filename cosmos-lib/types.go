// ABOUTME: Public types for the COSMOS library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package cosmos

import (
	"time"

	"cosmos-api/core/domain"
)

// SearchResult is a single article or web page returned by a search
type SearchResult struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	Type        string    `json:"type"`
	Author      string    `json:"author,omitempty"`
	Content     string    `json:"content,omitempty"`
}

// Source is a news outlet that can be used to filter searches and headlines
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

func convertResults(results []domain.SearchResult) []*SearchResult {
	out := make([]*SearchResult, len(results))
	for i, r := range results {
		out[i] = &SearchResult{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			ImageURL:    r.ImageURL,
			PublishedAt: r.PublishedAt,
			Source:      r.Source,
			Type:        string(r.Type),
			Author:      r.Author,
			Content:     r.Content,
		}
	}
	return out
}

func convertSources(sources []domain.NewsSource) []*Source {
	out := make([]*Source, len(sources))
	for i, s := range sources {
		out[i] = &Source{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			URL:         s.URL,
			Category:    s.Category,
			Language:    s.Language,
			Country:     s.Country,
		}
	}
	return out
}
