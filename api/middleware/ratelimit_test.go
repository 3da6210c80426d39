package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosmos-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
)

// frozenLimiter returns a limiter whose clock only moves when advanced
func frozenLimiter(t *testing.T, rps float64, burst int) (*RateLimiter, func(time.Duration)) {
	rl := NewRateLimiter(rps, burst)
	t.Cleanup(rl.Stop)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, func(d time.Duration) { now = now.Add(d) }
}

func serve(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/search?q=go", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, advance := frozenLimiter(t, 1, 3)

	// Burst of 3 is allowed
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))

	assert.False(t, rl.Allow("127.0.0.1"))

	// Different IP has its own bucket
	assert.True(t, rl.Allow("192.168.1.1"))

	// One token per second refills
	advance(time.Second)
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.False(t, rl.Allow("127.0.0.1"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl, advance := frozenLimiter(t, 1, 1)

	rl.Allow("a")
	advance(time.Minute)
	rl.Allow("b")
	advance(visitorIdleTTL)

	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimitMiddleware_AllowsRequestsUnderLimit(t *testing.T) {
	rl, _ := frozenLimiter(t, 1, 5)
	handler := RateLimitMiddleware(rl)(okHandler())

	for i := 0; i < 5; i++ {
		rec := serve(handler, "127.0.0.1:1234")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_Returns429ForExceededLimit(t *testing.T) {
	rl, _ := frozenLimiter(t, 0.5, 2)
	handler := RateLimitMiddleware(rl)(okHandler())

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
	}

	rec := serve(handler, "127.0.0.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_UsesIPAddressForLimiting(t *testing.T) {
	rl, _ := frozenLimiter(t, 1, 1)
	handler := RateLimitMiddleware(rl)(okHandler())

	assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
	// Same IP, different port
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "127.0.0.1:9999").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "192.168.1.1:5678").Code)
}

func TestRateLimitMiddleware_DisabledByFlag(t *testing.T) {
	rl, _ := frozenLimiter(t, 1, 1)
	flags := featureflags.NewStaticManager(featureflags.Defaults())
	flags.SetEnabled(featureflags.RateLimitEnabled, false)

	handler := FeatureFlagsMiddleware(flags)(RateLimitMiddleware(rl)(okHandler()))

	for i := 0; i < 5; i++ {
		rec := serve(handler, "127.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestFeatureFlagsMiddleware(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.CacheEnabled: true})

	var got featureflags.Manager
	handler := FeatureFlagsMiddleware(flags)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = featureflags.FromContext(r.Context())
	}))
	serve(handler, "127.0.0.1:1")

	assert.Same(t, flags, got)
	assert.True(t, got.IsEnabled(context.Background(), featureflags.CacheEnabled))
	assert.False(t, got.IsEnabled(context.Background(), featureflags.RateLimitEnabled))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func(*http.Request)
		expectedIP string
	}{
		{
			name: "uses first X-Forwarded-For entry",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "uses X-Real-IP header",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "203.0.113.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "falls back to RemoteAddr host",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1:1234"
			},
			expectedIP: "192.168.1.1",
		},
		{
			name: "keeps RemoteAddr without port",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "pipe"
			},
			expectedIP: "pipe",
		},
		{
			name: "prefers X-Forwarded-For over X-Real-IP",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			tt.setupReq(req)

			assert.Equal(t, tt.expectedIP, extractIP(req))
		})
	}
}
