package sanitizer

import (
	"strings"
	"unicode"
)

// RemoveControlChars drops control characters except newline, carriage
// return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// LimitLength cuts s to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// MaxMessageLength bounds free-text fields such as the contact message.
const MaxMessageLength = 5000

// FreeText cleans a multi-line free-text field: markup and control
// characters are removed, the result is trimmed and bounded.
func FreeText(s string) string {
	return Apply(s,
		StripHTML,
		RemoveControlChars,
		Trim,
		func(v string) string { return LimitLength(v, MaxMessageLength) },
	)
}
