package membership

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcucsya/portal/handler"
	"github.com/mcucsya/portal/pkg/binder"
	"github.com/mcucsya/portal/pkg/feature"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/pagination"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

// HTTP serves the membership pages and API.
type HTTP struct {
	svc          *Service
	site         *siteconfig.Site
	errorHandler handler.ErrorHandler[handler.Context]
	submit       func(http.Handler) http.Handler
}

// HTTPOption configures the HTTP handlers.
type HTTPOption func(*HTTP)

// WithErrorHandler sets the error handler of every route.
func WithErrorHandler(eh handler.ErrorHandler[handler.Context]) HTTPOption {
	return func(h *HTTP) { h.errorHandler = eh }
}

// WithSubmitMiddleware wraps every POST route, typically with a rate limiter.
func WithSubmitMiddleware(mw func(http.Handler) http.Handler) HTTPOption {
	return func(h *HTTP) { h.submit = mw }
}

func NewHTTP(svc *Service, opts ...HTTPOption) *HTTP {
	h := &HTTP{
		svc:    svc,
		site:   svc.Site(),
		submit: func(next http.Handler) http.Handler { return next },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle returns the router with every membership route.
func (h *HTTP) Handle() http.Handler {
	r := chi.NewRouter()
	flags := h.svc.Flags()

	r.Group(func(r chi.Router) {
		r.Use(feature.Require(flags, feature.MemberRegistration, nil))
		r.Get("/register", wrap(h, h.registerPage))
		r.With(h.submit).Post("/register", wrapRecord(h, h.registerSubmit))
		r.With(h.submit).Post(h.apiPath("register"), wrapRecord(h, h.registerAPI))
	})

	r.Get("/contact", wrap(h, h.contactPage))
	r.With(h.submit).Post("/contact", wrapRecord(h, h.contactSubmit))
	r.With(h.submit).Post(h.apiPath("contact"), wrapRecord(h, h.contactAPI))

	r.With(feature.Require(flags, feature.MemberDirectory, nil)).
		Get(h.apiPath("members"), handler.Wrap(h.directory,
			handler.WithBinder[handler.Context, pagination.Params](binder.Query()),
			handler.WithErrorHandler[handler.Context, pagination.Params](h.handleError),
		))
	r.Get(h.apiPath("constituencies"), wrap(h, h.constituencies))
	r.Get(h.apiPath("leadership"), wrap(h, h.leadership))
	r.Get(h.apiPath("events"), wrap(h, h.eventCategories))
	r.Get(h.apiPath("stats"), wrap(h, h.stats))

	return r
}

func (h *HTTP) apiPath(endpoint string) string {
	return h.site.Endpoint(endpoint)
}

func (h *HTTP) handleError(ctx handler.Context, err error) {
	if h.errorHandler != nil {
		h.errorHandler(ctx, err)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func wrap(h *HTTP, fn handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(fn, handler.WithErrorHandler[handler.Context, struct{}](h.handleError))
}

func wrapRecord(h *HTTP, fn handler.HandlerFunc[handler.Context, form.Record]) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinder[handler.Context, form.Record](binder.Record()),
		handler.WithErrorHandler[handler.Context, form.Record](h.handleError),
	)
}

// failed hands err to the route's error handler.
type failed struct{ err error }

func (f failed) Render(http.ResponseWriter, *http.Request) error { return f.err }

func fail(err error) handler.Response {
	if errors.Is(err, ErrRegistrationClosed) {
		return failed{handler.ErrNotFound}
	}
	return failed{err}
}
