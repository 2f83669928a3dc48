package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcucsya/portal/handler"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

// Layout wraps body in the page shell: head, navigation and the toast
// container.
func Layout(site *siteconfig.Site, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		org := site.Organization
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(title), ` | `, esc(org.Acronym), `</title>`,
			`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">`,
			`<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">`,
			`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"></script>`,
			`</head><body>`,
			`<nav class="navbar navbar-dark bg-primary"><div class="container">`,
			`<a class="navbar-brand" href="/">`, esc(org.Acronym), `</a>`,
			`<div class="navbar-nav flex-row gap-3"><a class="nav-link" href="/register">Join</a>`,
			`<a class="nav-link" href="/contact">Contact</a></div></div></nav>`,
			`<div id="`, ToastContainerID, `" class="position-fixed top-0 end-0 p-3" style="z-index:9999"></div>`,
			`<main class="container py-5"><h1 class="mb-4">`, esc(title), `</h1>`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main><footer class="container py-4 text-muted small">`,
			esc(org.Name), ` &middot; `, esc(org.Email), `</footer></body></html>`)
		return h.err
	})
}

// Message renders a page with a single alert, used after a successful
// plain HTML submission.
func Message(site *siteconfig.Site, title string, t ToastType, message string) templ.Component {
	return Layout(site, title, Toast(t, message))
}

// ErrorPage renders the page used by the error handler.
func ErrorPage(site *siteconfig.Site) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			h := &htmlWriter{w: w}
			h.raw(`<p class="lead">`, esc(p.Error), `</p>`)
			if p.RequestID != "" {
				h.raw(`<p class="text-muted small">Request ID: <code>`, esc(p.RequestID), `</code></p>`)
			}
			h.raw(`<a class="btn btn-outline-primary" href="`, esc(p.RetryURL), `">Try again</a>`)
			return h.err
		})
		return Layout(site, "Error "+strconv.Itoa(p.StatusCode), body)
	}
}

// ErrorToast renders the toast used by the error handler for DataStar
// requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return Toast(ToastType(p.Type), p.Message)
}
