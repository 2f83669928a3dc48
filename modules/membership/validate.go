package membership

import (
	"context"
	"errors"

	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
	"github.com/mcucsya/portal/pkg/slug"
	"github.com/mcucsya/portal/pkg/validator"
)

// NormalizeConstituency turns a constituency name or id into its id form,
// e.g. "Machakos Town" becomes "machakos_town".
func NormalizeConstituency(v string) string {
	return slug.Make(v, slug.Separator("_"))
}

// Validate runs the form engine over rec with the required fields of
// formType. For a valid registration the option checks follow: gender and
// education must be declared options and the normalized constituency must
// be a declared constituency. The returned record carries the normalized
// constituency.
func Validate(site *siteconfig.Site, engine *form.Engine, formType string, rec form.Record) (form.Record, form.Result, error) {
	required, err := site.RequiredFields(formType)
	if err != nil {
		return rec, form.Result{}, err
	}

	res := engine.Validate(rec, required)
	if !res.IsValid || formType != siteconfig.FormRegistration {
		return rec, res, nil
	}

	rec = rec.Clone()
	if rec.Present(FieldConstituency) {
		rec[FieldConstituency] = NormalizeConstituency(rec.Get(FieldConstituency))
	}
	return rec, res.Merge(optionChecks(site, rec)), nil
}

func optionChecks(site *siteconfig.Site, rec form.Record) validator.ValidationErrors {
	f, _ := site.Form(siteconfig.FormRegistration)
	msg := site.Messages.Validation.InvalidOption

	constituencies := site.ConstituencyList()
	ids := make([]string, len(constituencies))
	for i, c := range constituencies {
		ids[i] = c.ID
	}

	var rules []validator.Rule
	if rec.Present(FieldGender) {
		rules = append(rules, validator.InListString(FieldGender, rec.Get(FieldGender), siteconfig.Values(f.GenderOptions), msg))
	}
	if rec.Present(FieldEducation) {
		rules = append(rules, validator.InListString(FieldEducation, rec.Get(FieldEducation), siteconfig.Values(f.EducationLevels), msg))
	}
	if rec.Present(FieldConstituency) {
		rules = append(rules, validator.InListString(FieldConstituency, rec.Get(FieldConstituency), ids, msg))
	}
	return validator.Evaluate(rules...)
}

// duplicateChecks reports an already registered email or phone. Lookup
// failures are returned as an error rather than as field failures.
func duplicateChecks(ctx context.Context, site *siteconfig.Site, store MemberStore, m Member) (validator.ValidationErrors, error) {
	var lookupErr error
	exists := func(lookup func(context.Context, string) (bool, error), value string) func() bool {
		return func() bool {
			found, err := lookup(ctx, value)
			if err != nil {
				lookupErr = errors.Join(lookupErr, err)
				return false
			}
			return found
		}
	}

	msgs := site.Messages.Validation
	errs := validator.Evaluate(
		validator.Unique(form.FieldEmail, exists(store.ExistsByEmail, m.Email), msgs.EmailExists),
		validator.Unique(form.FieldPhone, exists(store.ExistsByPhone, m.Phone), msgs.PhoneExists),
	)
	return errs, lookupErr
}
