package handler

import (
	"net/http"
	"slices"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	register := handler.HandlerFunc[handler.Context, form.Record](
//		func(ctx handler.Context, rec form.Record) handler.Response {
//			res := engine.Validate(rec, required)
//			if !res.IsValid {
//				return handler.JSONError(handler.FromResult(res))
//			}
//			return handler.JSON(member, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Render errors are passed to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder replaces the request binders with b.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders that run in order.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler answers with the HTTPError status and key, or 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	info := classifyError(err)
	http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
}

// defaultContext works only when C is the Context interface itself. Custom
// context types must bring their own factory.
func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := NewContext(w, r).(C)
	if !ok {
		panic("handler: custom context type needs WithContextFactory")
	}
	return c
}

// pipeline is one wrapped handler: bind, run, render. Every failure goes
// to the error handler.
type pipeline[C Context, R any] struct {
	wrapConfig[C, R]
	run HandlerFunc[C, R]
}

func (p *pipeline[C, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := p.contextFactory(w, r)

	var req R
	for _, bind := range p.binders {
		if err := bind(r, &req); err != nil {
			p.errorHandler(ctx, err)
			return
		}
	}

	resp := p.run(ctx, req)
	if resp == nil {
		p.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		p.errorHandler(ctx, err)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	p := &pipeline[C, R]{
		wrapConfig: wrapConfig[C, R]{
			errorHandler:   defaultErrorHandler[C],
			contextFactory: defaultContext[C],
		},
		run: h,
	}
	for _, opt := range opts {
		opt(&p.wrapConfig)
	}
	for _, d := range slices.Backward(p.decorators) {
		p.run = d(p.run)
	}
	return p.ServeHTTP
}
