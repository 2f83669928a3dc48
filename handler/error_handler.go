package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/mcucsya/portal/pkg/binder"
	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/requestid"
)

// ErrorPageParams is the data of a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data of an error toast.
type ErrorToastParams struct {
	Message   string
	Type      string // "danger", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders. A nil
// ErrorPage falls back to a plain-text body. A nil ErrorToast sends nothing.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	ToastTarget string                    // default "#toast-container"
	ToastMode   datastar.ElementPatchMode // default PatchPrepend
}

// ErrorInfo is how an error is reported: status, user-facing message,
// toast type and the level it is logged at.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

// asHTTPError maps err to an HTTPError. Binding failures become 400 or 415.
func asHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr, true
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType, true
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return ErrBadRequest, true
	}
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return ErrRequestTooLarge, true
	}
	return HTTPError{}, false
}

// classifyError maps err to its ErrorInfo. Client errors are warnings and
// everything else is a logged error with a generic message.
func classifyError(err error) ErrorInfo {
	status, msg := http.StatusInternalServerError, "An error occurred processing your request"
	if httpErr, ok := asHTTPError(err); ok {
		status, msg = httpErr.Code, httpErr.Key
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		status, msg = http.StatusUnprocessableEntity, verr.Error()
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return ErrorInfo{StatusCode: status, Message: msg, Type: "warning", LogLevel: slog.LevelWarn}
	}
	return ErrorInfo{StatusCode: status, Message: msg, Type: "danger", LogLevel: slog.LevelError}
}

type errorResponder struct {
	cfg ErrorHandlerConfig
	log *slog.Logger
}

// NewErrorHandler creates the error handler shared by all routes.
// JSON clients get a JSON error body, DataStar requests a toast patch and
// plain browser requests the error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}
	e := &errorResponder{cfg: cfg, log: log.With(logger.Component("error_handler"))}
	return e.handle
}

func (e *errorResponder) handle(ctx Context, err error) {
	r := ctx.Request()
	info := classifyError(err)
	e.log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
	)

	reqID := requestid.FromContext(r.Context())
	var renderErr error
	switch {
	case WantsJSON(r):
		renderErr = JSONError(err).Render(ctx.ResponseWriter(), r)
	case IsDataStar(r):
		renderErr = e.toast(ctx, info, reqID)
	default:
		renderErr = e.page(ctx, info, reqID)
	}
	if renderErr != nil {
		e.log.Error("failed to render error response", logger.RequestID(reqID), logger.Error(renderErr))
	}
}

// toast patches an error toast in. SSE responses keep status 200.
func (e *errorResponder) toast(ctx Context, info ErrorInfo, reqID string) error {
	if e.cfg.ErrorToast == nil {
		e.log.Warn("no error toast component configured for DataStar request", logger.RequestID(reqID))
		return nil
	}
	c := e.cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: reqID})
	return Templ(c, WithTarget(e.cfg.ToastTarget), WithPatchMode(e.cfg.ToastMode)).
		Render(ctx.ResponseWriter(), ctx.Request())
}

func (e *errorResponder) page(ctx Context, info ErrorInfo, reqID string) error {
	w := ctx.ResponseWriter()
	if e.cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return nil
	}
	c := e.cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  reqID,
		RetryURL:   ctx.Request().URL.Path,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	return c.Render(ctx, w)
}
