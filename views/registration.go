package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

// RegistrationFormID is the element DataStar patches on resubmission.
const RegistrationFormID = "registration-form"

// RegistrationData fills the member registration form.
type RegistrationData struct {
	State          FormState
	Genders        []siteconfig.Option
	Education      []siteconfig.Option
	Constituencies []siteconfig.Option
}

// NewRegistrationData reads the option lists from site.
func NewRegistrationData(site *siteconfig.Site, state FormState) RegistrationData {
	f, _ := site.Form(siteconfig.FormRegistration)
	cs := site.ConstituencyList()
	opts := make([]siteconfig.Option, 0, len(cs))
	for _, c := range cs {
		opts = append(opts, siteconfig.Option{Value: c.ID, Label: c.Name})
	}
	return RegistrationData{
		State:          state,
		Genders:        f.GenderOptions,
		Education:      f.EducationLevels,
		Constituencies: opts,
	}
}

// RegistrationForm renders the form alone, the DataStar patch target.
func RegistrationForm(d RegistrationData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.formOpen(RegistrationFormID, "/register")
		h.raw(`<div class="row"><div class="col-md-6">`)
		h.input(d.State, inputSpec{form.FieldFirstName, "First Name", "text"})
		h.raw(`</div><div class="col-md-6">`)
		h.input(d.State, inputSpec{form.FieldLastName, "Last Name", "text"})
		h.raw(`</div></div>`)
		h.input(d.State, inputSpec{form.FieldEmail, "Email Address", "email"})
		h.input(d.State, inputSpec{form.FieldPhone, "Phone Number", "tel"})
		h.input(d.State, inputSpec{form.FieldDateOfBirth, "Date of Birth", "date"})
		h.selectInput(d.State, "gender", "Gender", d.Genders)
		h.selectInput(d.State, "constituency", "Constituency", d.Constituencies)
		h.selectInput(d.State, "education", "Education Level", d.Education)
		h.raw(`<button type="submit" class="btn btn-primary w-100">Register</button></form>`)
		return h.err
	})
}

// RegistrationPage renders the full registration document.
func RegistrationPage(site *siteconfig.Site, d RegistrationData) templ.Component {
	return Layout(site, "Join Us", RegistrationForm(d))
}
