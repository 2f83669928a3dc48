package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is the subset of templ.Component the responses need.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches into the elements matching selector.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patch is merged into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component with its own patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch pairs a component with options for TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// templResponse holds what a plain request renders (page, written in order)
// and what a DataStar request receives (patches, one SSE event each).
type templResponse struct {
	page    []TemplComponent
	patches []TemplPatch
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range t.page {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as HTML, or as a single patch for DataStar.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		page:    []TemplComponent{component},
		patches: []TemplPatch{Patch(component, opts...)},
	}
}

// TemplPartial renders full for plain requests and patches only partial
// for DataStar ones.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		page:    []TemplComponent{full},
		patches: []TemplPatch{Patch(partial, opts...)},
	}
}

// TemplMulti sends every patch to DataStar with its own options. Plain
// requests get the components concatenated.
func TemplMulti(patches ...TemplPatch) Response {
	page := make([]TemplComponent, len(patches))
	for i, p := range patches {
		page[i] = p.Component
	}
	return templResponse{page: page, patches: patches}
}
