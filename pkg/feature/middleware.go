package feature

import "net/http"

// Require serves next only while the flag is enabled. Otherwise the request
// is answered by disabled, or with 404 when disabled is nil.
func Require(p Provider, name string, disabled http.Handler) func(http.Handler) http.Handler {
	if disabled == nil {
		disabled = http.NotFoundHandler()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Enabled(r.Context(), p, name) {
				disabled.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
