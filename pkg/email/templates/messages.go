// Package templates holds the HTML bodies of the portal's emails.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Layout wraps body in the shared email chrome.
func Layout(title, orgName string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title></head>`+
				`<body style="font-family:Arial,sans-serif;color:#212529;margin:0;padding:24px;background:#f8f9fa">`+
				`<div style="max-width:560px;margin:0 auto;background:#fff;padding:24px;border-radius:8px">`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<hr style="border:none;border-top:1px solid #dee2e6;margin:24px 0">`+
				`<p style="font-size:12px;color:#6c757d">%s</p></div></body></html>`,
			templ.EscapeString(orgName))
		return err
	})
}

// WelcomeData fills the registration confirmation.
type WelcomeData struct {
	OrgName      string
	FirstName    string
	Constituency string
}

// Welcome confirms a new membership.
func Welcome(d WelcomeData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1 style="font-size:20px">Welcome, %s!</h1>`+
				`<p>Thank you for registering with %s. Your membership for %s has been recorded.</p>`+
				`<p>We will keep you posted on upcoming events and programs.</p>`,
			templ.EscapeString(d.FirstName),
			templ.EscapeString(d.OrgName),
			templ.EscapeString(d.Constituency))
		return err
	})
}

// ContactData is a message submitted through the contact form.
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactForward relays a contact message to the organization.
// Line breaks in the message are preserved.
func ContactForward(d ContactData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		lines := strings.Split(d.Message, "\n")
		for i, l := range lines {
			lines[i] = templ.EscapeString(l)
		}
		_, err := fmt.Fprintf(w,
			`<h1 style="font-size:20px">%s</h1>`+
				`<p><strong>From:</strong> %s &lt;%s&gt;</p>`+
				`<p>%s</p>`,
			templ.EscapeString(d.Subject),
			templ.EscapeString(d.Name),
			templ.EscapeString(d.Email),
			strings.Join(lines, "<br>"))
		return err
	})
}
