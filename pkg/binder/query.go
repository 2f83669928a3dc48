package binder

import "net/http"

// Query creates a query parameter binder.
//
// Supported struct tags:
//   - `query:"name"` binds query parameter "name"
//   - `query:"-"` skips the field
//
// Untagged fields bind by their lower-cased name. Slices accept both
// repeated parameters and comma separated values.
//
//	type listRequest struct {
//		pagination.Params
//		Constituency string `query:"constituency"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
