package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcucsya/portal/pkg/siteconfig"
)

// ContactFormID is the element DataStar patches on resubmission.
const ContactFormID = "contact-form"

// ContactForm renders the contact form alone.
func ContactForm(state FormState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.formOpen(ContactFormID, "/contact")
		h.input(state, inputSpec{"name", "Your Name", "text"})
		h.input(state, inputSpec{"email", "Email Address", "email"})
		h.input(state, inputSpec{"subject", "Subject", "text"})
		h.input(state, inputSpec{"message", "Message", "textarea"})
		h.raw(`<button type="submit" class="btn btn-primary">Send Message</button></form>`)
		return h.err
	})
}

// ContactPage renders the full contact document.
func ContactPage(site *siteconfig.Site, state FormState) templ.Component {
	return Layout(site, "Contact Us", ContactForm(state))
}
