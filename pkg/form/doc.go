// Package form validates submitted membership forms.
//
// A submission is a Record: a flat map of field name to submitted string.
// An Engine checks a Record against the list of required fields for the form
// and against the type-specific predicates of package validator:
//
//	engine := form.New(cfg)
//	res := engine.Validate(rec, []string{"firstName", "email"})
//	if !res.IsValid {
//	    // res.Errors["email"] == "Please enter a valid email address."
//	}
//
// Each failing field reports exactly one message. Required checks run first in
// the order given, then format checks run for every known field that carries a
// non-empty value, and a later failure overwrites an earlier one for the same
// field.
//
// The engine performs no I/O and never mutates the record. It holds only
// immutable configuration and is safe for concurrent use.
package form
