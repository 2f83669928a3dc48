package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ToastType is the Bootstrap alert variant of a notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastDanger  ToastType = "danger"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

var toastIcons = map[ToastType]string{
	ToastSuccess: "check-circle",
	ToastDanger:  "exclamation-triangle",
	ToastWarning: "exclamation-circle",
	ToastInfo:    "info-circle",
}

// Icon returns the Font Awesome icon of t. Unknown types use the info icon.
func (t ToastType) Icon() string {
	if icon, ok := toastIcons[t]; ok {
		return icon
	}
	return toastIcons[ToastInfo]
}

func (t ToastType) normalize() ToastType {
	if _, ok := toastIcons[t]; ok {
		return t
	}
	return ToastInfo
}

// ToastContainerID is the element toasts are prepended into.
const ToastContainerID = "toast-container"

// Toast renders a dismissible notification.
func Toast(t ToastType, message string) templ.Component {
	t = t.normalize()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="alert alert-`, string(t), ` alert-dismissible notification-toast" role="alert">`,
			`<i class="fas fa-`, t.Icon(), ` me-2"></i>`, esc(message),
			`<button type="button" class="btn-close" aria-label="Close" data-on-click="el.parentElement.remove()"></button>`,
			`</div>`)
		return h.err
	})
}
