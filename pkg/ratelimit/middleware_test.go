package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justerika/signup-gateway/pkg/ratelimit"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("21st request within the window is rejected", func(t *testing.T) {
		t.Parallel()

		sw := newMemoryLimiter(t, 20, time.Minute)
		handler := ratelimit.Middleware(sw, ratelimit.ByClientIP)(okHandler)

		doPost := func() *httptest.ResponseRecorder {
			r := httptest.NewRequest(http.MethodPost, "/subscribe/erika", nil)
			r.RemoteAddr = "203.0.113.5:4242"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			return w
		}

		for i := range 20 {
			w := doPost()
			require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		}

		w := doPost()
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("different clients do not share a window", func(t *testing.T) {
		t.Parallel()

		sw := newMemoryLimiter(t, 1, time.Minute)
		handler := ratelimit.Middleware(sw, ratelimit.ByClientIP)(okHandler)

		doPost := func(addr string) int {
			r := httptest.NewRequest(http.MethodPost, "/subscribe/erika", nil)
			r.RemoteAddr = addr
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			return w.Code
		}

		assert.Equal(t, http.StatusOK, doPost("203.0.113.5:1"))
		assert.Equal(t, http.StatusTooManyRequests, doPost("203.0.113.5:2"))
		assert.Equal(t, http.StatusOK, doPost("198.51.100.7:3"))
	})

	t.Run("empty key admits the request", func(t *testing.T) {
		t.Parallel()

		sw := newMemoryLimiter(t, 1, time.Minute)
		handler := ratelimit.Middleware(sw, func(*http.Request) string { return "" })(okHandler)

		for range 5 {
			r := httptest.NewRequest(http.MethodPost, "/subscribe/erika", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rate limit headers are set", func(t *testing.T) {
		t.Parallel()

		sw := newMemoryLimiter(t, 20, time.Minute)
		handler := ratelimit.Middleware(sw, ratelimit.ByClientIP)(okHandler)

		r := httptest.NewRequest(http.MethodPost, "/subscribe/erika", nil)
		r.RemoteAddr = "203.0.113.5:4242"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "20", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "19", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("nil key func panics", func(t *testing.T) {
		t.Parallel()

		sw := newMemoryLimiter(t, 1, time.Minute)
		assert.Panics(t, func() {
			ratelimit.Middleware(sw, nil)
		})
	})
}
