// ABOUTME: Ordering of merged search results

package search

import (
	"sort"

	"cosmos-api/core/domain"
)

// sortResults orders results in place. Only publishedAt reorders; relevancy and
// popularity keep merge order.
func sortResults(results []domain.SearchResult, by domain.SortBy) {
	if by != domain.SortByPublishedAt {
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PublishedAt.After(results[j].PublishedAt)
	})
}
