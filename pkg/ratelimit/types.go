package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the oldest recorded request leaves the window.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the admission-control interface the middleware consumes.
type Limiter interface {
	// Allow checks if a request is allowed for the given key and records it
	// when it is.
	Allow(ctx context.Context, key string) (*Result, error)
}

// Store persists sliding-window state per key.
type Store interface {
	// RecordIfAllowed atomically counts requests within the window and, when
	// the count is below limit, records the new request. It returns whether
	// the request was recorded and the resulting in-window count.
	RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (allowed bool, count int64, err error)

	// Reset clears the window for the given key.
	Reset(ctx context.Context, key string) error
}
