package views

import (
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

// FormState carries submitted values and field errors back into a form.
type FormState struct {
	Values form.Record
	Errors map[string]string
}

// NewFormState pairs the submitted record with the validation result.
func NewFormState(rec form.Record, res form.Result) FormState {
	return FormState{Values: rec, Errors: res.Errors}
}

func (s FormState) value(name string) string { return s.Values.Get(name) }

func (s FormState) errorFor(name string) (string, bool) {
	msg, ok := s.Errors[name]
	return msg, ok
}

type inputSpec struct {
	name, label, kind string
}

// input renders a labelled input, with is-invalid and an invalid-feedback
// element when the field failed.
func (h *htmlWriter) input(s FormState, in inputSpec) {
	class := "form-control"
	msg, invalid := s.errorFor(in.name)
	if invalid {
		class += " is-invalid"
	}
	h.raw(`<div class="mb-3">`,
		`<label class="form-label" for="`, esc(in.name), `">`, esc(in.label), `</label>`)
	if in.kind == "textarea" {
		h.raw(`<textarea class="`, class, `" id="`, esc(in.name), `" name="`, esc(in.name), `" rows="5">`,
			esc(s.value(in.name)), `</textarea>`)
	} else {
		h.raw(`<input class="`, class, `" type="`, in.kind, `" id="`, esc(in.name), `" name="`, esc(in.name),
			`" value="`, esc(s.value(in.name)), `">`)
	}
	h.feedback(msg, invalid)
	h.raw(`</div>`)
}

// selectInput renders a select with the submitted option preselected.
func (h *htmlWriter) selectInput(s FormState, name, label string, opts []siteconfig.Option) {
	class := "form-select"
	msg, invalid := s.errorFor(name)
	if invalid {
		class += " is-invalid"
	}
	current := s.value(name)
	h.raw(`<div class="mb-3">`,
		`<label class="form-label" for="`, esc(name), `">`, esc(label), `</label>`,
		`<select class="`, class, `" id="`, esc(name), `" name="`, esc(name), `">`,
		`<option value="">Select...</option>`)
	for _, o := range opts {
		selected := ""
		if o.Value == current {
			selected = " selected"
		}
		h.raw(`<option value="`, esc(o.Value), `"`, selected, `>`, esc(o.Label), `</option>`)
	}
	h.raw(`</select>`)
	h.feedback(msg, invalid)
	h.raw(`</div>`)
}

func (h *htmlWriter) feedback(msg string, invalid bool) {
	if invalid {
		h.raw(`<div class="invalid-feedback">`, esc(msg), `</div>`)
	}
}

// formOpen starts a form that posts normally and through DataStar.
func (h *htmlWriter) formOpen(id, action string) {
	h.raw(`<form id="`, esc(id), `" method="post" action="`, esc(action), `" novalidate `,
		`data-on-submit__prevent="@post('`, esc(action), `', {contentType: 'form'})">`)
}
