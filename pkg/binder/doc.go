// Package binder decodes HTTP requests into handler inputs.
//
// Record reads a submitted form (urlencoded, multipart or flat JSON) into a
// form.Record, the input of the validation engine. Query binds URL query
// parameters into a struct using `query` tags.
//
//	h := handler.Wrap(register, handler.WithBinder(binder.Record()))
//
// Binding errors wrap the sentinels in errors.go so callers can map them to
// 400 or 415 responses with errors.Is.
package binder
