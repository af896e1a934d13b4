// Package clientip derives a best-effort client address from forwarded-for
// headers or the transport-level peer address. The address is informational:
// it keys the signup rate limiter and is recorded alongside subscriptions,
// but it is never validated beyond syntactic IP parsing.
package clientip
