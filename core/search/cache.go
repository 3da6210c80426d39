// ABOUTME: Contribution cache keyed by upstream source and normalized request
// ABOUTME: Stores successful per-source result lists as JSON

package search

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"cosmos-api/core/domain"
)

// contributionKey hashes everything that changes an upstream answer
func contributionKey(source, query string, opts domain.SearchOptions, perSource int) string {
	parts := []string{
		strings.ToLower(query),
		string(opts.Recency),
		strings.Join(opts.Sources, ","),
		strings.Join(opts.Domains, ","),
		opts.Language,
		string(opts.SortBy),
		strconv.Itoa(perSource),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "\x1f")))
	return "search:" + source + ":" + hex.EncodeToString(sum[:])
}

// loadContribution returns a cached list with fresh ids; any cache problem reads as a miss
func (s *SearchService) loadContribution(ctx context.Context, key, idPrefix string) ([]domain.SearchResult, bool) {
	if !s.cachingEnabled(ctx) {
		return nil, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var results []domain.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		s.deps.Log().Debug("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	for i := range results {
		results[i].ID = s.newID(idPrefix)
	}
	return results, true
}

func (s *SearchService) storeContribution(ctx context.Context, key string, results []domain.SearchResult) {
	if !s.cachingEnabled(ctx) {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.deps.Log().Debug("Failed to cache contribution", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
