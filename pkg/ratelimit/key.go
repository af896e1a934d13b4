package ratelimit

import (
	"net/http"

	"github.com/justerika/signup-gateway/pkg/clientip"
)

// KeyFunc extracts a rate limit key from an HTTP request. An empty key
// disables limiting for that request.
type KeyFunc func(*http.Request) string

// ByClientIP keys the limiter on the client address resolved by the clientip
// middleware, falling back to direct extraction when the middleware is not
// installed.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}
