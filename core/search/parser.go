// ABOUTME: Turns a free-text web search answer into discrete search results
// ABOUTME: Single-pass two-state machine keyed on lines that carry a URL

package search

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"cosmos-api/core/domain"
	"cosmos-api/pkg/utils/html"
)

const (
	// webSourceName is the source of the synthetic result emitted for URL-free answers
	webSourceName = "Perplexity AI"

	minTitleRunes       = 10
	maxTitleRunes       = 199
	minDescriptionRunes = 20
	syntheticPrefixLen  = 200
)

var urlPattern = regexp.MustCompile(`https?://[^\s)]+`)

type parserState int

const (
	noActiveResult parserState = iota
	accumulatingResult
)

// accumulator collects the fields of the result being built
type accumulator struct {
	url         string
	title       string
	description string
	content     string
}

// feed offers a text line to the first field still empty that accepts it
func (a *accumulator) feed(line string) {
	n := utf8.RuneCountInString(line)
	if a.title == "" && n >= minTitleRunes && n <= maxTitleRunes {
		a.title = line
		return
	}
	if a.description == "" && n >= minDescriptionRunes {
		a.description = line
	}
}

// citationParser converts one answer for one category
type citationParser struct {
	query    string
	category domain.ContentType
	now      time.Time
	newID    func(prefix string) string

	state   parserState
	current accumulator
	results []domain.SearchResult
}

// parseCitations splits text into results. When no line carries a URL a single
// synthetic result wraps the whole answer; blank text yields nothing.
func parseCitations(text, query string, category domain.ContentType, now time.Time, newID func(string) string) []domain.SearchResult {
	p := &citationParser{
		query:    query,
		category: category,
		now:      now,
		newID:    newID,
		state:    noActiveResult,
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if url := urlPattern.FindString(line); url != "" {
			p.onURLLine(url, line)
		} else {
			p.onTextLine(line)
		}
	}
	p.onEndOfInput(text)

	return p.results
}

func (p *citationParser) onURLLine(url, line string) {
	switch p.state {
	case noActiveResult:
		p.current = accumulator{url: url, content: line}
		p.state = accumulatingResult
	case accumulatingResult:
		if p.current.url == "" {
			p.current.url = url
			p.current.content = line
			return
		}
		p.flush()
		p.current = accumulator{url: url, content: line}
	}
}

func (p *citationParser) onTextLine(line string) {
	if p.state == noActiveResult {
		p.current = accumulator{}
		p.state = accumulatingResult
	}
	p.current.feed(line)
}

func (p *citationParser) onEndOfInput(text string) {
	if p.state == accumulatingResult && p.current.url != "" {
		p.flush()
	}
	p.state = noActiveResult

	if len(p.results) == 0 && strings.TrimSpace(text) != "" {
		p.results = append(p.results, p.synthetic(text))
	}
}

func (p *citationParser) flush() {
	title := p.current.title
	if title == "" {
		title = fmt.Sprintf("%s result for %q", p.category, p.query)
	}

	p.results = append(p.results, domain.SearchResult{
		ID:          p.newID(string(p.category)),
		Title:       title,
		Description: p.current.description,
		URL:         p.current.url,
		PublishedAt: p.now,
		Source:      extractDomain(p.current.url),
		Type:        p.category.ResultType(),
		Content:     p.current.content,
	})
	p.current = accumulator{}
}

func (p *citationParser) synthetic(text string) domain.SearchResult {
	return domain.SearchResult{
		ID:          p.newID(string(p.category)),
		Title:       fmt.Sprintf("%s search results for %q", p.category, p.query),
		Description: html.Truncate(text, syntheticPrefixLen, "") + "...",
		PublishedAt: p.now,
		Source:      webSourceName,
		Type:        p.category.ResultType(),
		Content:     text,
	}
}
