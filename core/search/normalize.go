// ABOUTME: Maps upstream records onto the unified SearchResult shape
// ABOUTME: Also holds id generation, domain extraction and recency date math

package search

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"cosmos-api/core/domain"
	"cosmos-api/core/newsapi"
	"cosmos-api/pkg/utils/html"
	timeutil "cosmos-api/pkg/utils/time"

	"github.com/google/uuid"
)

const (
	removedArticleTitle = "[Removed]"
	untitledArticle     = "Untitled article"
	unknownDomain       = "Unknown"

	// fromDateLayout is the date-only layout the news API accepts for from/to
	fromDateLayout = "2006-01-02"
)

// newResultID builds "<prefix>-<unixnano>-<random>"; ids are unique, not stable
func newResultID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8])
}

// articlesToResults normalizes a news page, dropping tombstoned articles
func articlesToResults(articles []newsapi.Article, idPrefix string, newID func(string) string) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(articles))
	for _, a := range articles {
		if a.Title == removedArticleTitle {
			continue
		}
		results = append(results, articleToResult(a, idPrefix, newID))
	}
	return results
}

func articleToResult(a newsapi.Article, idPrefix string, newID func(string) string) domain.SearchResult {
	title := html.StripHTML(a.Title)
	if title == "" {
		title = untitledArticle
	}

	return domain.SearchResult{
		ID:          newID(idPrefix),
		Title:       title,
		Description: html.StripHTML(newsapi.StringValue(a.Description)),
		URL:         a.URL,
		ImageURL:    newsapi.StringValue(a.URLToImage),
		PublishedAt: timeutil.ParseFlexibleTime(a.PublishedAt),
		Source:      a.Source.Name,
		Type:        domain.ResultTypeNews,
		Author:      newsapi.StringValue(a.Author),
		Content:     html.StripHTML(newsapi.StringValue(a.Content)),
	}
}

func sourceToDomain(s newsapi.Source) domain.NewsSource {
	return domain.NewsSource{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		URL:         s.URL,
		Category:    s.Category,
		Language:    s.Language,
		Country:     s.Country,
	}
}

// extractDomain returns the host without a leading "www.", or "Unknown"
func extractDomain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return unknownDomain
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// dateFromRecency returns the date portion of now minus the recency window
func dateFromRecency(now time.Time, r domain.Recency) string {
	var from time.Time
	switch r {
	case domain.RecencyHour:
		from = now.Add(-time.Hour)
	case domain.RecencyDay:
		from = now.AddDate(0, 0, -1)
	case domain.RecencyMonth:
		from = now.AddDate(0, -1, 0)
	default:
		from = now.AddDate(0, 0, -7)
	}
	return from.Format(fromDateLayout)
}
