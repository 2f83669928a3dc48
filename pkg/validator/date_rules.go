package validator

import "time"

// AgeBetween checks the whole-year age of dateOfBirth on now against ages.
// An unparseable date reports the same error as an out-of-range age.
func AgeBetween(field, dateOfBirth string, ages AgeRange, now time.Time, message string) Rule {
	return newRule(field, KeyAgeBetween, message,
		func() bool { return IsValidAge(dateOfBirth, ages.MinAge, ages.MaxAge, now) },
		"min_age", ages.MinAge, "max_age", ages.MaxAge)
}

// ValidAge is AgeBetween with the range and message of cfg.
func ValidAge(cfg Config, field, dateOfBirth string, now time.Time) Rule {
	return AgeBetween(field, dateOfBirth, cfg.Ages, now, cfg.AgeMessage())
}
