package validator

import "slices"

// InListString fails unless value is one of allowed.
func InListString(field, value string, allowed []string, message string) Rule {
	return newRule(field, KeyInList, message,
		func() bool { return slices.Contains(allowed, value) }, "allowed_values", allowed)
}

// Unique fails when exists reports true. The lookup is deferred until the
// rule is checked, so it never runs for rules that are not evaluated.
func Unique(field string, exists func() bool, message string) Rule {
	return newRule(field, KeyDuplicate, message, func() bool { return !exists() })
}
