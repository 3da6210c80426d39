// ABOUTME: Lenient timestamp parsing for upstream API payloads
// ABOUTME: Accepts ISO 8601 variants and HTTP dates, normalizing to UTC

package time

import (
	"strings"
	"time"
)

// layouts are tried in order; the first match wins
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseFlexibleTime parses s in any known layout and returns it in UTC.
// Unparseable input yields the zero time.
func ParseFlexibleTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
