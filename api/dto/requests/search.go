// ABOUTME: Request DTOs for the search, headlines and sources endpoints
// ABOUTME: Query parameters carry huma validation tags and convert to domain options

package requests

import (
	"strings"

	"cosmos-api/core/domain"
)

// SearchRequest is the query string of GET /search
type SearchRequest struct {
	Query    string   `query:"q" required:"true" minLength:"1" maxLength:"500" doc:"Search query"`
	Type     string   `query:"type" enum:"news,blogs,general,all" default:"all" doc:"Which upstreams to search"`
	Recency  string   `query:"recency" enum:"hour,day,week,month" default:"week" doc:"Time window for results"`
	Sources  []string `query:"sources" doc:"News source ids to restrict to"`
	Domains  []string `query:"domains" doc:"Domains to restrict to"`
	Language string   `query:"language" default:"en" doc:"Language of news articles"`
	SortBy   string   `query:"sort_by" enum:"relevancy,popularity,publishedAt" default:"publishedAt" doc:"Result ordering"`
	Limit    int      `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of results"`
}

// Options converts the request into search options
func (r *SearchRequest) Options() domain.SearchOptions {
	return domain.SearchOptions{
		Type:     domain.ContentType(r.Type),
		Recency:  domain.Recency(r.Recency),
		Sources:  cleanList(r.Sources),
		Domains:  cleanList(r.Domains),
		Language: r.Language,
		SortBy:   domain.SortBy(r.SortBy),
		Limit:    r.Limit,
	}
}

// HeadlinesRequest is the query string of GET /headlines
type HeadlinesRequest struct {
	Country  string   `query:"country" doc:"Two-letter country code"`
	Category string   `query:"category" doc:"News category"`
	Sources  []string `query:"sources" doc:"News source ids"`
	Limit    int      `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of headlines"`
}

// Options converts the request into headline options
func (r *HeadlinesRequest) Options() domain.HeadlinesOptions {
	return domain.HeadlinesOptions{
		Country:  r.Country,
		Category: r.Category,
		Sources:  cleanList(r.Sources),
		Limit:    r.Limit,
	}
}

// SourcesRequest is the query string of GET /sources
type SourcesRequest struct {
	Category string `query:"category" doc:"News category"`
	Language string `query:"language" doc:"Language code"`
	Country  string `query:"country" doc:"Two-letter country code"`
}

// Options converts the request into catalogue filters
func (r *SourcesRequest) Options() domain.SourcesOptions {
	return domain.SourcesOptions{
		Category: r.Category,
		Language: r.Language,
		Country:  r.Country,
	}
}

// cleanList trims entries, drops empty ones and splits any comma lists
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
