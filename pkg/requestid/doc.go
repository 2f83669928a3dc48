// Package requestid tags every request with an identifier, echoes it in the
// X-Request-ID response header and exposes it to handlers and logs.
//
// A well-formed incoming X-Request-ID header is reused so ids can be followed
// across a proxy. Anything else is replaced with a time-ordered UUIDv7.
package requestid
