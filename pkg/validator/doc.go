// Package validator provides the field predicates of the membership forms
// and the small rule-building core they are expressed with.
//
// Predicates are pure functions over a single string value. Pattern-based
// predicates hang off Config, the one explicit configuration value that
// carries the compiled email, phone and name patterns, the accepted age
// range and the user-facing messages:
//
//	cfg := validator.DefaultConfig()
//	cfg.IsValidEmail("a@b.com")        // true
//	cfg.IsValidPhone("0712345678")     // true
//	validator.IsRequired("   ")        // false
//
// # Rules
//
// A Rule pairs a deferred Check with the ValidationError reported when it
// fails. Evaluate and Apply run rules in order and collect every failure
// into ValidationErrors, which satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.Required("email", email, cfg.Messages.Required),
//	    validator.ValidEmail(cfg, "email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Map() // one message per field, last failure wins
//	}
//
// Each ValidationError carries a TranslationKey (KeyRequired, KeyEmail, ...)
// that callers use to classify the failure or look up a translation.
//
// # Dates
//
// Age is computed with calendar-aware subtraction: the year difference,
// decremented when the birthday has not yet occurred in the current year.
// Unparseable dates fail the age check rather than returning an error.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
