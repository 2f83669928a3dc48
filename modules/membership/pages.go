package membership

import (
	"net/http"

	"github.com/mcucsya/portal/handler"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/views"
)

func (h *HTTP) registerPage(_ handler.Context, _ struct{}) handler.Response {
	data := views.NewRegistrationData(h.site, views.FormState{})
	return handler.Templ(views.RegistrationPage(h.site, data))
}

func (h *HTTP) registerSubmit(ctx handler.Context, rec form.Record) handler.Response {
	_, res, err := h.svc.Register(ctx, rec)
	if err != nil {
		return fail(err)
	}

	if !res.IsValid {
		data := views.NewRegistrationData(h.site, views.NewFormState(rec, res))
		return h.formResponse(
			views.RegistrationForm(data),
			views.RegistrationPage(h.site, data),
			"#"+views.RegistrationFormID,
			h.site.Messages.Validation.FormInvalid,
		)
	}

	msg := h.site.Messages.Success.Registration
	if handler.IsDataStar(ctx.Request()) {
		data := views.NewRegistrationData(h.site, views.FormState{})
		return handler.TemplMulti(
			handler.Patch(views.RegistrationForm(data), handler.WithTarget("#"+views.RegistrationFormID)),
			toastPatch(views.ToastSuccess, msg),
		)
	}
	return handler.WithStatus(http.StatusCreated,
		handler.Templ(views.Message(h.site, "Welcome", views.ToastSuccess, msg)))
}

func (h *HTTP) contactPage(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(views.ContactPage(h.site, views.FormState{}))
}

func (h *HTTP) contactSubmit(ctx handler.Context, rec form.Record) handler.Response {
	_, res, err := h.svc.SendContact(ctx, rec)
	if err != nil {
		return fail(err)
	}

	if !res.IsValid {
		state := views.NewFormState(rec, res)
		return h.formResponse(
			views.ContactForm(state),
			views.ContactPage(h.site, state),
			"#"+views.ContactFormID,
			h.site.Messages.Validation.FormInvalid,
		)
	}

	msg := h.site.Messages.Success.Contact
	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(views.ContactForm(views.FormState{}), handler.WithTarget("#"+views.ContactFormID)),
			toastPatch(views.ToastSuccess, msg),
		)
	}
	return handler.Templ(views.Message(h.site, "Message Sent", views.ToastSuccess, msg))
}

// formResponse re-renders a rejected form. DataStar gets the form patched in
// place plus a toast; plain requests get the whole page with status 422.
func (h *HTTP) formResponse(partial, page handler.TemplComponent, target, message string) handler.Response {
	return handler.WithStatus(http.StatusUnprocessableEntity, dataStarOr(
		handler.TemplMulti(
			handler.Patch(partial, handler.WithTarget(target)),
			toastPatch(views.ToastDanger, message),
		),
		handler.Templ(page),
	))
}

func toastPatch(t views.ToastType, message string) handler.TemplPatch {
	return handler.Patch(views.Toast(t, message),
		handler.WithTarget("#"+views.ToastContainerID),
		handler.WithPatchMode(handler.PatchPrepend),
	)
}

// dataStarOr picks ds for DataStar requests and plain otherwise.
type dataStarSwitch struct {
	ds, plain handler.Response
}

func dataStarOr(ds, plain handler.Response) handler.Response {
	return dataStarSwitch{ds: ds, plain: plain}
}

func (s dataStarSwitch) Render(w http.ResponseWriter, r *http.Request) error {
	if handler.IsDataStar(r) {
		return s.ds.Render(w, r)
	}
	return s.plain.Render(w, r)
}
