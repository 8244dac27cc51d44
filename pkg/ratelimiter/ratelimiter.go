// Package ratelimiter provides rate limiting for the HTTP API, protecting
// the upstream completion and embedding quota from request bursts.
package ratelimiter

// RateLimiter is the interface implemented by all rate limiting algorithms.
type RateLimiter interface {
	// Allow reports whether a request may proceed right now.
	Allow() bool
}
