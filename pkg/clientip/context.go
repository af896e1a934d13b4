package clientip

import "context"

type contextKey struct{}

// WithContext stores the client IP in context.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext retrieves the client IP from context, or "" if absent.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
