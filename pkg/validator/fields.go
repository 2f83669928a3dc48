package validator

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate. HTML date inputs submit the first one.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// IsRequired fails for an empty or whitespace-only value.
// An absent form value is passed in as the empty string.
func IsRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidEmail matches value against the configured email pattern.
func (c Config) IsValidEmail(value string) bool {
	return value != "" && c.Email.MatchString(value)
}

// IsValidPhone matches value against the configured phone pattern.
// No normalization is performed, so embedded spaces or dashes fail.
func (c Config) IsValidPhone(value string) bool {
	return value != "" && c.Phone.MatchString(value)
}

// IsValidName matches value against the configured name pattern.
func (c Config) IsValidName(value string) bool {
	return value != "" && c.Name.MatchString(value)
}

// IsValidAge reports whether the configured range contains the age on now.
func (c Config) IsValidAge(dateOfBirth string, now time.Time) bool {
	return IsValidAge(dateOfBirth, c.Ages.MinAge, c.Ages.MaxAge, now)
}

// IsValidAge computes the whole-year age of dateOfBirth on now and checks
// minAge <= age <= maxAge. Unparseable dates always fail.
func IsValidAge(dateOfBirth string, minAge, maxAge int, now time.Time) bool {
	birth, err := ParseDate(dateOfBirth)
	if err != nil {
		return false
	}
	return AgeRange{MinAge: minAge, MaxAge: maxAge}.Contains(Age(birth, now))
}

// ParseDate parses a calendar date in one of the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Age returns whole years elapsed between birth and now: the year difference,
// less one when the birth month/day has not yet been reached in now's year.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
