// Package ratelimit provides the sliding-window admission control placed in
// front of the signup routes. Each client address gets a bounded number of
// requests per window; requests over the cap are rejected with 429 before
// the handler runs.
//
// Two storage backends are available: MemoryStore for single-replica
// deployments and RedisStore for shared state across replicas.
package ratelimit
