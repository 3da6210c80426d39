// ABOUTME: Response DTOs for the search, headlines and sources endpoints
// ABOUTME: JSON field names follow the camelCase result schema

package responses

// SearchResultResponse is one normalized result
type SearchResultResponse struct {
	ID          string `json:"id" doc:"Opaque id, unique per response"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
	PublishedAt string `json:"publishedAt" doc:"RFC 3339 timestamp; parse time for web search results"`
	Source      string `json:"source"`
	Type        string `json:"type" enum:"news,blog,general"`
	Author      string `json:"author,omitempty"`
	Content     string `json:"content,omitempty"`
}

// SearchResponse wraps a result list
type SearchResponse struct {
	Query   string                 `json:"query,omitempty"`
	Count   int                    `json:"count"`
	Results []SearchResultResponse `json:"results"`
}

// SourceResponse is one entry of the source catalogue
type SourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

// SourcesResponse wraps the source catalogue
type SourcesResponse struct {
	Count   int              `json:"count"`
	Sources []SourceResponse `json:"sources"`
}
