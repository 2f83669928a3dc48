package form

import (
	"maps"
	"net/url"
)

// Well-known field names with type-specific checks.
const (
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldDateOfBirth = "dateOfBirth"
)

// Record is a submitted form. A missing key is an absent value.
type Record map[string]string

// FromValues converts url.Values keeping the first value of each key.
func FromValues(values url.Values) Record {
	rec := make(Record, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			rec[key] = vals[0]
		} else {
			rec[key] = ""
		}
	}
	return rec
}

// Get returns the value of field, or "" when absent.
func (r Record) Get(field string) string {
	return r[field]
}

// Present reports whether field exists with a non-empty value.
// Whitespace counts as a value here; required checks trim it separately.
func (r Record) Present(field string) bool {
	v, ok := r[field]
	return ok && v != ""
}

func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}
