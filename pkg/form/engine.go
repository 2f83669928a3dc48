package form

import (
	"time"

	"github.com/mcucsya/portal/pkg/validator"
)

// Engine validates records against a validator.Config.
type Engine struct {
	cfg validator.Config
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for age checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an engine for cfg.
func New(cfg validator.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the configuration the engine validates with.
func (e *Engine) Config() validator.Config {
	return e.cfg
}

// Validate checks rec. Required fields are checked first in the given order.
// Format checks follow for known fields that carry a value, overwriting any
// earlier message for the same field.
func (e *Engine) Validate(rec Record, requiredFields []string) Result {
	rules := make([]validator.Rule, 0, len(requiredFields)+5)

	for _, field := range requiredFields {
		rules = append(rules, validator.Required(field, rec.Get(field), e.cfg.Messages.Required))
	}

	if rec.Present(FieldEmail) {
		rules = append(rules, validator.ValidEmail(e.cfg, FieldEmail, rec.Get(FieldEmail)))
	}
	if rec.Present(FieldPhone) {
		rules = append(rules, validator.ValidPhone(e.cfg, FieldPhone, rec.Get(FieldPhone)))
	}
	if rec.Present(FieldFirstName) {
		rules = append(rules, validator.ValidName(e.cfg, FieldFirstName, rec.Get(FieldFirstName), e.cfg.Messages.InvalidFirstName))
	}
	if rec.Present(FieldLastName) {
		rules = append(rules, validator.ValidName(e.cfg, FieldLastName, rec.Get(FieldLastName), e.cfg.Messages.InvalidLastName))
	}
	if rec.Present(FieldDateOfBirth) {
		rules = append(rules, validator.ValidAge(e.cfg, FieldDateOfBirth, rec.Get(FieldDateOfBirth), e.now()))
	}

	return newResult(validator.Evaluate(rules...))
}
