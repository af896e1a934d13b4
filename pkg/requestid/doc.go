// Package requestid assigns a unique identifier to every HTTP request and
// exposes it through context and the X-Request-ID header for log correlation.
package requestid
