// ABOUTME: Search domain models for aggregated news and web search results
// ABOUTME: Defines the unified result shape plus the options that drive a search

package domain

import (
	"time"

	coreerrors "cosmos-api/core/errors"
)

// ResultType tags which upstream produced a result
type ResultType string

const (
	ResultTypeNews    ResultType = "news"
	ResultTypeBlog    ResultType = "blog"
	ResultTypeGeneral ResultType = "general"
)

// ContentType selects which upstreams a search taps
type ContentType string

const (
	ContentTypeNews    ContentType = "news"
	ContentTypeBlogs   ContentType = "blogs"
	ContentTypeGeneral ContentType = "general"
	ContentTypeAll     ContentType = "all"
)

// Recency is a coarse time window applied to upstream searches
type Recency string

const (
	RecencyHour  Recency = "hour"
	RecencyDay   Recency = "day"
	RecencyWeek  Recency = "week"
	RecencyMonth Recency = "month"
)

// SortBy selects the ordering of merged results
type SortBy string

const (
	SortByRelevancy   SortBy = "relevancy"
	SortByPopularity  SortBy = "popularity"
	SortByPublishedAt SortBy = "publishedAt"
)

const (
	// DefaultLimit is the number of results returned when no limit is given
	DefaultLimit = 20

	// MaxLimit is the news API page size cap. Larger limits still trim the merged list.
	MaxLimit = 100

	// DefaultLanguage is the language filter sent to the news API
	DefaultLanguage = "en"
)

// SearchResult is the unified record produced from every upstream
type SearchResult struct {
	// ID is unique per normalization, not stable across calls
	ID string

	// Title is always non-empty
	Title string

	// Description may be empty
	Description string

	// URL may be empty when no link could be determined
	URL string

	// ImageURL is optional
	ImageURL string

	// PublishedAt is the publication time, or the parse time for web search results
	PublishedAt time.Time

	// Source is the outlet name or the extracted domain
	Source string

	// Type identifies the producing client category
	Type ResultType

	// Author is optional
	Author string

	// Content is an optional raw excerpt
	Content string
}

// SearchOptions configures a single aggregated search
type SearchOptions struct {
	Type     ContentType
	Recency  Recency
	Sources  []string
	Domains  []string
	Language string
	SortBy   SortBy
	Limit    int
}

// WithDefaults returns a copy with every unset option filled in
func (o SearchOptions) WithDefaults() SearchOptions {
	if o.Type == "" {
		o.Type = ContentTypeAll
	}
	if o.Recency == "" {
		o.Recency = RecencyWeek
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.SortBy == "" {
		o.SortBy = SortByPublishedAt
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Validate checks enum values and bounds. Call it after WithDefaults.
func (o SearchOptions) Validate() error {
	if !o.Type.Valid() {
		return coreerrors.NewValidationError("type", "unsupported value %q", o.Type)
	}
	if !o.Recency.Valid() {
		return coreerrors.NewValidationError("recency", "unsupported value %q", o.Recency)
	}
	if !o.SortBy.Valid() {
		return coreerrors.NewValidationError("sortBy", "unsupported value %q", o.SortBy)
	}
	if o.Limit < 1 {
		return coreerrors.NewValidationError("limit", "must be positive, got %d", o.Limit)
	}
	return nil
}

// PerSourceLimit is the quota each tapped upstream gets.
// With type=all every source receives ceil(limit/3).
func (o SearchOptions) PerSourceLimit() int {
	if o.Type == ContentTypeAll {
		return (o.Limit + 2) / 3
	}
	return o.Limit
}

// Valid reports whether c is a known content type
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeNews, ContentTypeBlogs, ContentTypeGeneral, ContentTypeAll:
		return true
	}
	return false
}

// IncludesNews reports whether the news API is tapped for c
func (c ContentType) IncludesNews() bool {
	return c == ContentTypeNews || c == ContentTypeAll
}

// WebCategory returns the web search category tapped for c, if any.
// type=all searches the general category.
func (c ContentType) WebCategory() (ContentType, bool) {
	switch c {
	case ContentTypeBlogs, ContentTypeGeneral:
		return c, true
	case ContentTypeAll:
		return ContentTypeGeneral, true
	}
	return "", false
}

// ResultType maps a web search category to the result type it produces
func (c ContentType) ResultType() ResultType {
	switch c {
	case ContentTypeNews:
		return ResultTypeNews
	case ContentTypeBlogs:
		return ResultTypeBlog
	default:
		return ResultTypeGeneral
	}
}

// Valid reports whether r is a known recency window
func (r Recency) Valid() bool {
	switch r {
	case RecencyHour, RecencyDay, RecencyWeek, RecencyMonth:
		return true
	}
	return false
}

// Valid reports whether s is a known sort order
func (s SortBy) Valid() bool {
	switch s {
	case SortByRelevancy, SortByPopularity, SortByPublishedAt:
		return true
	}
	return false
}

// HeadlinesOptions configures a top headlines lookup
type HeadlinesOptions struct {
	Country  string
	Category string
	Sources  []string
	Limit    int
}

// WithDefaults returns a copy with the default limit applied
func (o HeadlinesOptions) WithDefaults() HeadlinesOptions {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// PageSize is the upstream page size, capped at MaxLimit
func (o HeadlinesOptions) PageSize() int {
	if o.Limit > MaxLimit {
		return MaxLimit
	}
	return o.Limit
}

// Validate checks the headline options
func (o HeadlinesOptions) Validate() error {
	if o.Limit < 1 {
		return coreerrors.NewValidationError("limit", "must be positive, got %d", o.Limit)
	}
	return nil
}
