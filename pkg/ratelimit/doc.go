// Package ratelimit provides the rate limiters used on both sides of the
// influencer finder.
//
// Inbound, the HTTP API limits each client IP with a KeyedLimiter: a
// sliding window per key, 100 requests per 15 minutes by default.
//
// Outbound, calls to RapidAPI go through a RateLimiter, a thin adapter over
// golang.org/x/time/rate that smooths requests to a steady rate.
//
// TokenBucket and SlidingWindow remain available for simpler uses. All
// single-key limiters implement Limiter:
//   - Allow() bool - Check if a request is allowed
//   - Wait(ctx) error - Block until a request is allowed or ctx ends
//   - Reset() - Reset the limiter state
package ratelimit
