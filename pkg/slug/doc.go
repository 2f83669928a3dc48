// Package slug turns free text into identifiers.
//
// The portal uses it to normalize a submitted constituency ("Machakos Town")
// into the id declared in the site document ("machakos_town"):
//
//	id := slug.Make("Machakos Town", slug.Separator("_"))
//
// Diacritics are removed by Unicode decomposition, apostrophes and other
// punctuation are dropped, and runs of whitespace, hyphens or underscores
// become a single separator.
package slug
