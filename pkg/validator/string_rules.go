package validator

import (
	"fmt"
	"unicode/utf8"
)

// Translation keys of the length rules.
const (
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
)

// Required fails for an empty or whitespace-only value.
func Required(field, value, message string) Rule {
	return newRule(field, KeyRequired, message, func() bool { return IsRequired(value) })
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, n int) Rule {
	return newRule(field, KeyMinLength, fmt.Sprintf("must be at least %d characters long", n),
		func() bool { return utf8.RuneCountInString(value) >= n }, "min", n)
}

func MaxLen(field, value string, n int) Rule {
	return newRule(field, KeyMaxLength, fmt.Sprintf("must be at most %d characters long", n),
		func() bool { return utf8.RuneCountInString(value) <= n }, "max", n)
}
