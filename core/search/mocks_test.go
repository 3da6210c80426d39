package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cosmos-api/core/interfaces"
	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
)

// fakeNewsClient is a func-field NewsClient
type fakeNewsClient struct {
	everythingFunc func(ctx context.Context, params newsapi.EverythingParams) (*newsapi.Response, error)
	headlinesFunc  func(ctx context.Context, params newsapi.HeadlinesParams) (*newsapi.Response, error)
	sourcesFunc    func(ctx context.Context, params newsapi.SourcesParams) (*newsapi.SourcesResponse, error)

	mu    sync.Mutex
	calls int
}

func (f *fakeNewsClient) SearchEverything(ctx context.Context, params newsapi.EverythingParams) (*newsapi.Response, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.everythingFunc != nil {
		return f.everythingFunc(ctx, params)
	}
	return &newsapi.Response{Status: "ok"}, nil
}

func (f *fakeNewsClient) TopHeadlines(ctx context.Context, params newsapi.HeadlinesParams) (*newsapi.Response, error) {
	if f.headlinesFunc != nil {
		return f.headlinesFunc(ctx, params)
	}
	return &newsapi.Response{Status: "ok"}, nil
}

func (f *fakeNewsClient) Sources(ctx context.Context, params newsapi.SourcesParams) (*newsapi.SourcesResponse, error) {
	if f.sourcesFunc != nil {
		return f.sourcesFunc(ctx, params)
	}
	return &newsapi.SourcesResponse{Status: "ok"}, nil
}

func (f *fakeNewsClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeWebClient answers every category through one function
type fakeWebClient struct {
	searchFunc func(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error)
}

func (f *fakeWebClient) search(ctx context.Context, category, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
	if f.searchFunc != nil {
		return f.searchFunc(ctx, category, query, opts)
	}
	return answer(""), nil
}

func (f *fakeWebClient) SearchNews(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
	return f.search(ctx, "news", query, opts)
}

func (f *fakeWebClient) SearchBlogs(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
	return f.search(ctx, "blogs", query, opts)
}

func (f *fakeWebClient) SearchGeneral(ctx context.Context, query string, opts perplexity.CategoryOptions) (*perplexity.Response, error) {
	return f.search(ctx, "general", query, opts)
}

// answer wraps text in a single-choice completion
func answer(text string) *perplexity.Response {
	return &perplexity.Response{
		ID:    "cmpl-1",
		Model: "sonar",
		Choices: []perplexity.Choice{
			{Index: 0, Message: perplexity.Message{Role: "assistant", Content: text}},
		},
	}
}

func strPtr(s string) *string { return &s }

// mockCache is a map-backed Cache that records writes
type mockCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockCache) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// mockLogger records messages by level
type mockLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *mockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("%s %s %v", level, msg, fields))
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *mockLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if strings.HasPrefix(e, level+" ") {
			n++
		}
	}
	return n
}

// sequentialIDs returns deterministic ids for assertions
func sequentialIDs() func(string) string {
	var mu sync.Mutex
	n := 0
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
