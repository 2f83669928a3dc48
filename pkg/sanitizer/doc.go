// Package sanitizer normalizes accepted form input before it is stored or
// rendered, and masks personal data before it is logged.
//
// Sanitizers run after validation: they never decide whether a value is
// acceptable, they only bring accepted values into canonical shape
// (trimmed, title-cased names, lower-case e-mail). Helpers are plain
// func(string) string values so they compose:
//
//	cleanName := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.TitleCase,
//	)
//	first := cleanName("  jANE   wAMBUI ") // "Jane Wambui"
//
// TitleCase relies on golang.org/x/text/cases so non-ASCII letters are
// handled by Unicode rules rather than byte arithmetic.
package sanitizer
