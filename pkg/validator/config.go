package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Default patterns of the registration form. RE2 treats \s as ASCII
// whitespace only, so none of them widen to Unicode spaces.
const (
	DefaultEmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	DefaultPhonePattern = `^(\+?254|0)[17]\d{8}$`
	DefaultNamePattern  = `^[a-zA-Z\s]{2,50}$`

	DefaultMinAge = 13
	DefaultMaxAge = 35
)

// AgeRange is an inclusive range of whole years.
type AgeRange struct {
	MinAge int
	MaxAge int
}

// Contains reports whether age lies within the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.MinAge && age <= r.MaxAge
}

// Messages holds the user-facing texts reported for each failure.
// AgeOutOfRange may reference {min} and {max}.
type Messages struct {
	Required         string
	InvalidEmail     string
	InvalidPhone     string
	InvalidFirstName string
	InvalidLastName  string
	AgeOutOfRange    string
}

// DefaultMessages returns the stock English messages.
func DefaultMessages() Messages {
	return Messages{
		Required:         "This field is required.",
		InvalidEmail:     "Please enter a valid email address.",
		InvalidPhone:     "Please enter a valid phone number.",
		InvalidFirstName: "Please enter a valid first name",
		InvalidLastName:  "Please enter a valid last name",
		AgeOutOfRange:    "Age must be between {min} and {max} years",
	}
}

// Config is the single explicit validation configuration injected into
// the form engine. Build it with NewConfig or DefaultConfig.
type Config struct {
	Email    *regexp.Regexp
	Phone    *regexp.Regexp
	Name     *regexp.Regexp
	Ages     AgeRange
	Messages Messages
}

// ConfigParams are the raw, uncompiled settings of a Config.
// Empty strings and a zero Messages fall back to defaults.
type ConfigParams struct {
	EmailPattern string
	PhonePattern string
	NamePattern  string
	MinAge       int
	MaxAge       int
	Messages     Messages
}

// NewConfig compiles params into a Config.
func NewConfig(p ConfigParams) (Config, error) {
	if p.MinAge < 0 || p.MaxAge < 0 || p.MinAge > p.MaxAge {
		return Config{}, errors.Join(ErrInvalidConfig,
			fmt.Errorf("%w: min %d, max %d", ErrInvalidAgeRange, p.MinAge, p.MaxAge))
	}

	email, err := compile("email", p.EmailPattern, DefaultEmailPattern)
	if err != nil {
		return Config{}, err
	}
	phone, err := compile("phone", p.PhonePattern, DefaultPhonePattern)
	if err != nil {
		return Config{}, err
	}
	name, err := compile("name", p.NamePattern, DefaultNamePattern)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Email:    email,
		Phone:    phone,
		Name:     name,
		Ages:     AgeRange{MinAge: p.MinAge, MaxAge: p.MaxAge},
		Messages: mergeMessages(p.Messages, DefaultMessages()),
	}, nil
}

// DefaultConfig returns the stock configuration (ages 13 to 35).
func DefaultConfig() Config {
	cfg, err := NewConfig(ConfigParams{MinAge: DefaultMinAge, MaxAge: DefaultMaxAge})
	if err != nil {
		panic(err)
	}
	return cfg
}

// AgeMessage renders the age message for the configured range.
func (c Config) AgeMessage() string {
	return strings.NewReplacer(
		"{min}", strconv.Itoa(c.Ages.MinAge),
		"{max}", strconv.Itoa(c.Ages.MaxAge),
	).Replace(c.Messages.AgeOutOfRange)
}

func compile(name, pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, name, err))
	}
	return re, nil
}

func mergeMessages(m, def Messages) Messages {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Messages{
		Required:         pick(m.Required, def.Required),
		InvalidEmail:     pick(m.InvalidEmail, def.InvalidEmail),
		InvalidPhone:     pick(m.InvalidPhone, def.InvalidPhone),
		InvalidFirstName: pick(m.InvalidFirstName, def.InvalidFirstName),
		InvalidLastName:  pick(m.InvalidLastName, def.InvalidLastName),
		AgeOutOfRange:    pick(m.AgeOutOfRange, def.AgeOutOfRange),
	}
}
