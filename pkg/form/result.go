package form

import (
	"slices"

	"github.com/mcucsya/portal/pkg/validator"
)

// Kind classifies a field failure.
type Kind string

const (
	MissingField   Kind = "missing_field"
	MalformedValue Kind = "malformed_value"
	OutOfRangeAge  Kind = "out_of_range_age"
)

// KindOf maps a rule translation key to its failure kind.
func KindOf(translationKey string) Kind {
	switch translationKey {
	case validator.KeyRequired:
		return MissingField
	case validator.KeyAgeBetween:
		return OutOfRangeAge
	default:
		return MalformedValue
	}
}

// Result is the outcome of validating one record.
type Result struct {
	IsValid bool
	// Errors holds one message per failing field.
	Errors map[string]string
	// Details keeps every failure in evaluation order, including those
	// overwritten in Errors by a later check.
	Details validator.ValidationErrors
}

func newResult(details validator.ValidationErrors) Result {
	errs := details.Map()
	return Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
		Details: details,
	}
}

// Err returns the failures as an error, or nil when the record is valid.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return r.Details
}

// Fields returns the failing field names, sorted.
func (r Result) Fields() []string {
	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Kind returns the kind of the failure reported for field.
func (r Result) Kind(field string) (Kind, bool) {
	last, ok := r.Details.Last(field)
	if !ok {
		return "", false
	}
	return KindOf(last.TranslationKey), true
}

// Merge folds extra failures into the result, after the existing ones.
func (r Result) Merge(extra validator.ValidationErrors) Result {
	if extra.IsEmpty() {
		return r
	}
	details := make(validator.ValidationErrors, 0, len(r.Details)+len(extra))
	details = append(details, r.Details...)
	details = append(details, extra...)
	return newResult(details)
}
