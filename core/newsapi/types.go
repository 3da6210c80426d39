// ABOUTME: Wire types for the structured news article API
// ABOUTME: Mirrors the everything, top-headlines and sources response envelopes

package newsapi

import (
	"net/url"
	"strconv"
)

// MaxPageSize is the largest page size the news API accepts
const MaxPageSize = 100

// ArticleSource identifies the outlet of an article
type ArticleSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Article is a single raw article record
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      *string       `json:"author"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	URL         string        `json:"url"`
	URLToImage  *string       `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     *string       `json:"content"`
}

// Response is returned by the everything and top-headlines endpoints
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Source is an entry of the sources catalogue
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

// SourcesResponse is returned by the sources endpoint
type SourcesResponse struct {
	Status  string   `json:"status"`
	Sources []Source `json:"sources"`
}

// errorEnvelope is the body sent with non-2xx responses
type errorEnvelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EverythingParams are the query parameters of the everything endpoint.
// Zero values are omitted from the request.
type EverythingParams struct {
	Query          string
	Sources        string
	Domains        string
	ExcludeDomains string
	From           string
	To             string
	Language       string
	SortBy         string
	PageSize       int
	Page           int
}

func (p EverythingParams) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "q", p.Query)
	setIfNotEmpty(v, "sources", p.Sources)
	setIfNotEmpty(v, "domains", p.Domains)
	setIfNotEmpty(v, "excludeDomains", p.ExcludeDomains)
	setIfNotEmpty(v, "from", p.From)
	setIfNotEmpty(v, "to", p.To)
	setIfNotEmpty(v, "language", p.Language)
	setIfNotEmpty(v, "sortBy", p.SortBy)
	setPaging(v, p.PageSize, p.Page)
	return v
}

// HeadlinesParams are the query parameters of the top-headlines endpoint
type HeadlinesParams struct {
	Country  string
	Category string
	Sources  string
	Query    string
	PageSize int
	Page     int
}

func (p HeadlinesParams) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "country", p.Country)
	setIfNotEmpty(v, "category", p.Category)
	setIfNotEmpty(v, "sources", p.Sources)
	setIfNotEmpty(v, "q", p.Query)
	setPaging(v, p.PageSize, p.Page)
	return v
}

// SourcesParams are the query parameters of the sources endpoint
type SourcesParams struct {
	Category string
	Language string
	Country  string
}

func (p SourcesParams) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "category", p.Category)
	setIfNotEmpty(v, "language", p.Language)
	setIfNotEmpty(v, "country", p.Country)
	return v
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setPaging(v url.Values, pageSize, page int) {
	if pageSize > 0 {
		v.Set("pageSize", strconv.Itoa(ClampPageSize(pageSize)))
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
}

// ClampPageSize caps n at MaxPageSize
func ClampPageSize(n int) int {
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// StringValue dereferences an optional field
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
