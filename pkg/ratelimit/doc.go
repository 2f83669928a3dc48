// Package ratelimit throttles form submissions per client.
//
// Each key (by default the client IP resolved by pkg/clientip) gets its own
// token bucket from golang.org/x/time/rate. Buckets idle for longer than
// Config.IdleTTL are evicted by Cleanup.
//
//	limiter := ratelimit.New(cfg)
//	r.With(ratelimit.Middleware(limiter, ratelimit.ClientIP)).Post("/register", h)
//
// The middleware fails open: an empty key lets the request through.
package ratelimit
