// ABOUTME: Parameterized SQL builder for the SQLite contribution cache
// ABOUTME: Validates identifiers and keys so only placeholders carry caller data

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cosmos-api/core/interfaces"
)

const (
	tableName      = "search_cache"
	maxKeyLength   = 255
	maxValueLength = 1024 * 1024
)

var safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]{0,63}$`)

// allowedOperators are the comparison operators Where accepts
var allowedOperators = map[string]bool{
	"=": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true,
}

// QueryBuilder assembles a single statement. Invalid identifiers are dropped.
type QueryBuilder struct {
	parts []string
	where []string
}

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func validName(name string) bool {
	return safeNamePattern.MatchString(name)
}

// Select starts a SELECT; any invalid column falls back to *
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	cols := "*"
	if len(columns) > 0 {
		cols = strings.Join(columns, ", ")
		for _, col := range columns {
			if !validName(col) {
				cols = "*"
				break
			}
		}
	}
	qb.parts = append(qb.parts, "SELECT "+cols)
	return qb
}

// From adds the FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if validName(table) {
		qb.parts = append(qb.parts, "FROM "+table)
	}
	return qb
}

// Where adds a placeholder condition; unknown operators become =
func (qb *QueryBuilder) Where(column, operator string) *QueryBuilder {
	if !validName(column) {
		return qb
	}
	if !allowedOperators[operator] {
		operator = "="
	}
	qb.where = append(qb.where, column+" "+operator+" ?")
	return qb
}

// Upsert starts an INSERT OR REPLACE of the given columns
func (qb *QueryBuilder) Upsert(table string, columns ...string) *QueryBuilder {
	if !validName(table) || len(columns) == 0 {
		return qb
	}
	for _, col := range columns {
		if !validName(col) {
			return qb
		}
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	qb.parts = append(qb.parts, fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders))
	return qb
}

// Delete starts a DELETE
func (qb *QueryBuilder) Delete(table string) *QueryBuilder {
	if validName(table) {
		qb.parts = append(qb.parts, "DELETE FROM "+table)
	}
	return qb
}

// Build returns the statement and its placeholder count
func (qb *QueryBuilder) Build() (string, int) {
	query := strings.Join(qb.parts, " ")
	if len(qb.where) > 0 {
		query += " WHERE " + strings.Join(qb.where, " AND ")
	}
	return query, strings.Count(query, "?")
}

// suspiciousPatterns are logged, not rejected; parameterization neutralizes them
var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// ValidateKey rejects unusable keys and warns about injection-looking ones
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger == nil {
		return nil
	}
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) {
			logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
				"pattern":     pattern,
				"key_length":  len(key),
				"key_preview": truncateKey(key),
			})
		}
	}
	return nil
}

func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue rejects empty and oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}

// cacheQueries holds the prepared statement text used by Client
type cacheQueries struct {
	get, set, del, cleanup, count string
}

func buildCacheQueries() cacheQueries {
	get, _ := NewQueryBuilder().Select("value").From(tableName).Where("key", "=").Where("expiry", ">").Build()
	set, _ := NewQueryBuilder().Upsert(tableName, "key", "value", "expiry").Build()
	del, _ := NewQueryBuilder().Delete(tableName).Where("key", "=").Build()
	cleanup, _ := NewQueryBuilder().Delete(tableName).Where("expiry", "<=").Build()
	return cacheQueries{
		get:     get,
		set:     set,
		del:     del,
		cleanup: cleanup,
		count:   "SELECT COUNT(*) FROM " + tableName,
	}
}
