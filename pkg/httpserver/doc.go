// Package httpserver wraps net/http's Server with graceful shutdown, signal
// handling and functional options, configured from the environment.
package httpserver
