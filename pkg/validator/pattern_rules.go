package validator

import "regexp"

// Translation keys of the rules reported by the registration pipeline.
const (
	KeyRequired   = "validation.required"
	KeyEmail      = "validation.email"
	KeyPhone      = "validation.phone"
	KeyName       = "validation.name"
	KeyAgeBetween = "validation.age_between"
	KeyInList     = "validation.in_list"
	KeyDuplicate  = "validation.duplicate"
)

// MatchesPattern fails unless re matches the whole value as written.
// Callers anchor their own patterns.
func MatchesPattern(field, value string, re *regexp.Regexp, message, key string) Rule {
	return newRule(field, key, message,
		func() bool { return value != "" && re.MatchString(value) }, "pattern", re.String())
}

func ValidEmail(cfg Config, field, value string) Rule {
	return MatchesPattern(field, value, cfg.Email, cfg.Messages.InvalidEmail, KeyEmail)
}

func ValidPhone(cfg Config, field, value string) Rule {
	return MatchesPattern(field, value, cfg.Phone, cfg.Messages.InvalidPhone, KeyPhone)
}

// ValidName takes its message from the caller since first and last names
// report different texts.
func ValidName(cfg Config, field, value, message string) Rule {
	return MatchesPattern(field, value, cfg.Name, message, KeyName)
}
