package validator

import "errors"

var (
	// ErrInvalidConfig is returned when a validation config cannot be built.
	ErrInvalidConfig = errors.New("invalid validation config")

	// ErrInvalidPattern is returned when a configured pattern does not compile.
	ErrInvalidPattern = errors.New("invalid validation pattern")

	// ErrInvalidAgeRange is returned when minAge > maxAge or either bound is negative.
	ErrInvalidAgeRange = errors.New("invalid age range")

	// ErrInvalidDate is returned by ParseDate for values in no supported layout.
	ErrInvalidDate = errors.New("invalid date")
)
