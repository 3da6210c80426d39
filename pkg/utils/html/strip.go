// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Turns upstream article snippets into plain display text

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style contents are dropped.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style, noscript").Remove()

	return collapseSpace(doc.Text())
}

// Truncate shortens s to at most max runes, appending suffix when cut
func Truncate(s string, max int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + suffix
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
