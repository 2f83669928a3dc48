// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap adapts them to http.HandlerFunc:
//
//	func submit(ctx handler.Context, rec form.Record) handler.Response {
//		res := engine.Validate(rec, required)
//		if !res.IsValid {
//			return handler.JSONError(handler.FromResult(res))
//		}
//		return handler.JSON(member, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/api/v1/members/register", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, form.Record](binder.Record()),
//		handler.WithErrorHandler[handler.Context, form.Record](errorHandler),
//	))
//
// # Responses
//
// JSON and JSONError write the {"data":...} / {"error":{...}} envelope.
// A ValidationError becomes 422 with code "validation_error" and one list
// of messages per field.
//
// Templ, TemplPartial and TemplMulti render templ components. Requests made
// by DataStar (Accept: text/event-stream) receive SSE element patches
// instead of a full document, so a form can be re-rendered in place and a
// toast prepended to #toast-container in a single response. WithStatus sets
// the status of the plain HTML variant.
//
// Redirect answers a POST with 303, or with an SSE redirect for DataStar.
//
// # Errors
//
// Binding and render failures go to the ErrorHandler. NewErrorHandler logs
// 4xx at warn and 5xx at error level and answers in the format the client
// asked for: JSON, a DataStar toast, or an error page.
package handler
