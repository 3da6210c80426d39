package search

import (
	"strings"
	"testing"
	"time"

	"cosmos-api/core/domain"
	"cosmos-api/core/newsapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.example.com/a", "example.com"},
		{"https://news.example.org/path?q=1", "news.example.org"},
		{"https://example.com:8443/x", "example.com"},
		{"not a url", "Unknown"},
		{"", "Unknown"},
		{"://broken", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDomain(tt.in))
		})
	}
}

func TestDateFromRecency(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		recency domain.Recency
		want    string
	}{
		{domain.RecencyHour, "2026-03-13"},
		{domain.RecencyDay, "2026-03-13"},
		{domain.RecencyWeek, "2026-03-07"},
		{domain.RecencyMonth, "2026-02-14"},
		{"", "2026-03-07"},
	}

	for _, tt := range tests {
		t.Run(string(tt.recency), func(t *testing.T) {
			assert.Equal(t, tt.want, dateFromRecency(now, tt.recency))
		})
	}
}

func TestNewResultID(t *testing.T) {
	a := newResultID("news")
	b := newResultID("news")

	assert.True(t, strings.HasPrefix(a, "news-"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.Split(a, "-"), 3)
}

func TestArticlesToResults(t *testing.T) {
	articles := []newsapi.Article{
		{
			Source:      newsapi.ArticleSource{ID: strPtr("bbc-news"), Name: "BBC News"},
			Author:      strPtr("Jane Reporter"),
			Title:       "Markets <b>rally</b>",
			Description: strPtr("<p>Stocks rose &amp; bonds fell.</p>"),
			URL:         "https://bbc.co.uk/1",
			URLToImage:  strPtr("https://bbc.co.uk/1.jpg"),
			PublishedAt: "2026-03-14T09:00:00Z",
			Content:     strPtr("Full text [+120 chars]"),
		},
		{Title: "[Removed]", URL: "https://removed.com"},
		{Title: "", URL: "https://untitled.example", PublishedAt: "garbage"},
	}

	results := articlesToResults(articles, "news", sequentialIDs())

	require.Len(t, results, 2)

	r := results[0]
	assert.Equal(t, "news-1", r.ID)
	assert.Equal(t, "Markets rally", r.Title)
	assert.Equal(t, "Stocks rose & bonds fell.", r.Description)
	assert.Equal(t, "BBC News", r.Source)
	assert.Equal(t, "Jane Reporter", r.Author)
	assert.Equal(t, "https://bbc.co.uk/1.jpg", r.ImageURL)
	assert.Equal(t, domain.ResultTypeNews, r.Type)
	assert.True(t, r.PublishedAt.Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Untitled article", results[1].Title)
	assert.True(t, results[1].PublishedAt.IsZero())
	assert.Empty(t, results[1].Author)
}

func TestSortResults(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtures := func() []domain.SearchResult {
		return []domain.SearchResult{
			{ID: "a", PublishedAt: base},
			{ID: "b", PublishedAt: base.Add(2 * time.Hour)},
			{ID: "c"},
			{ID: "d", PublishedAt: base.Add(time.Hour)},
			{ID: "e", PublishedAt: base.Add(2 * time.Hour)},
		}
	}

	ids := func(rs []domain.SearchResult) string {
		var out []string
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return strings.Join(out, "")
	}

	byDate := fixtures()
	sortResults(byDate, domain.SortByPublishedAt)
	assert.Equal(t, "bedac", ids(byDate))

	for _, by := range []domain.SortBy{domain.SortByRelevancy, domain.SortByPopularity} {
		rs := fixtures()
		sortResults(rs, by)
		assert.Equal(t, "abcde", ids(rs), by)
	}
}

func TestContributionKey(t *testing.T) {
	opts := domain.SearchOptions{}.WithDefaults()

	k1 := contributionKey("news", "Golang", opts, 7)
	k2 := contributionKey("news", "golang", opts, 7)
	k3 := contributionKey("web:general", "golang", opts, 7)
	k4 := contributionKey("news", "golang", opts, 20)

	assert.True(t, strings.HasPrefix(k1, "search:news:"))
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k2, k3)
	assert.NotEqual(t, k2, k4)

	opts.Domains = []string{"bbc.co.uk"}
	assert.NotEqual(t, k2, contributionKey("news", "golang", opts, 7))
}
