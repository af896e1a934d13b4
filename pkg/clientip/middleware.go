package clientip

import "net/http"

// Middleware extracts the client IP once per request and stores it in the
// request context for downstream handlers and the rate limiter.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), GetIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
