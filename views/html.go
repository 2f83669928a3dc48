// Package views renders the portal's HTML as templ components.
//
// Components are plain templ.ComponentFunc values so they compose with
// handler.Templ and the DataStar patch helpers. Every dynamic value goes
// through templ.EscapeString.
package views

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter stops at the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}
