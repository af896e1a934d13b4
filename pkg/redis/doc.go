// Package redis provides connection helpers for the optional redis backend
// used by the rate limiter when the gateway runs with multiple replicas.
package redis
