package membership

import (
	"net/http"

	"github.com/mcucsya/portal/handler"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/pagination"
)

func (h *HTTP) registerAPI(ctx handler.Context, rec form.Record) handler.Response {
	m, res, err := h.svc.Register(ctx, rec)
	if err != nil {
		return fail(err)
	}
	if !res.IsValid {
		return handler.JSONError(handler.FromResult(res),
			handler.WithJSONMessage(h.site.Messages.Validation.FormInvalid))
	}
	return handler.JSON(m,
		handler.WithJSONStatus(http.StatusCreated),
		handler.WithJSONMeta(map[string]any{"message": h.site.Messages.Success.Registration}))
}

func (h *HTTP) contactAPI(ctx handler.Context, rec form.Record) handler.Response {
	c, res, err := h.svc.SendContact(ctx, rec)
	if err != nil {
		return fail(err)
	}
	if !res.IsValid {
		return handler.JSONError(handler.FromResult(res),
			handler.WithJSONMessage(h.site.Messages.Validation.FormInvalid))
	}
	return handler.JSON(c,
		handler.WithJSONStatus(http.StatusCreated),
		handler.WithJSONMeta(map[string]any{"message": h.site.Messages.Success.Contact}))
}

func (h *HTTP) directory(ctx handler.Context, p pagination.Params) handler.Response {
	perPage := h.site.UI.ItemsPerPage
	if perPage <= 0 {
		perPage = pagination.DefaultPerPage
	}
	p = p.Normalize(perPage)
	page, err := h.svc.Directory(ctx, p.Page, p.PerPage)
	if err != nil {
		return fail(err)
	}
	return handler.JSON(page)
}

func (h *HTTP) constituencies(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(h.site.ConstituencyList())
}

func (h *HTTP) leadership(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(h.site.LeadershipRoster())
}

func (h *HTTP) eventCategories(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(h.site.EventCategoryList())
}

func (h *HTTP) stats(ctx handler.Context, _ struct{}) handler.Response {
	st, err := h.svc.Stats(ctx)
	if err != nil {
		return fail(err)
	}
	return handler.JSON(st)
}
