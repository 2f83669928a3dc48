package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	scriptRegex     = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// TitleCase capitalizes every word and lower-cases the remaining letters.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// Truncate shortens s to length runes, trims the cut and appends suffix.
// Strings within the limit are returned unchanged.
func Truncate(s string, length int, suffix string) string {
	if length < 0 {
		length = 0
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:length])) + suffix
}

// StripHTML drops script and style blocks, removes remaining tags and
// unescapes entities, leaving the text content.
func StripHTML(s string) string {
	s = scriptRegex.ReplaceAllString(s, "")
	s = htmlTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
