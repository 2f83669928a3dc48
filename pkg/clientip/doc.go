// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are examined in priority order (CF-Connecting-IP, X-Forwarded-For,
// X-Real-IP) and RemoteAddr is the fallback. The first syntactically valid
// address wins; GetIP returns "" when none is found.
//
// Middleware stores the resolved address in the request context so the rate
// limiter and the logger read the same value:
//
//	r.Use(clientip.Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
