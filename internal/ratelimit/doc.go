// Package ratelimit provides a fixed-window request limiter for net/http.
//
// Each client key gets a counter that starts at the first request of a window
// and expires with it. Counters live in a Store: MemoryStore for a single
// process, RedisStore when several instances share the limit.
//
// Every response carries RateLimit-Policy, RateLimit-Limit,
// RateLimit-Remaining and RateLimit-Reset. Rejected requests also get
// Retry-After.
package ratelimit
