package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
)

// JSONResponse is the envelope of every JSON body: data on success, error
// on failure and optional meta alongside either.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error member of a JSONResponse. Details maps field
// names to their messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

func (j *jsonResponse) apply(opts []JSONOption) Response {
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JSONOption adjusts a JSON response before it is rendered.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(j *jsonResponse) { j.body.Meta = meta }
}

// WithJSONMessage replaces the message of an error response. Success
// responses are left untouched.
func WithJSONMessage(msg string) JSONOption {
	return func(j *jsonResponse) {
		if j.body.Error != nil {
			j.body.Error.Message = msg
		}
	}
}

// JSON renders v as the data member with status 200. A JSONResponse is
// sent as is, and errors render the way JSONError does.
func JSON(v any, opts ...JSONOption) Response {
	switch val := v.(type) {
	case JSONResponse:
		return (&jsonResponse{status: http.StatusOK, body: val}).apply(opts)
	case *ErrorDetail, error:
		return JSONError(val, opts...)
	}
	return (&jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}).apply(opts)
}

// JSONError renders err as the error member. A ValidationError becomes 422
// with per-field details, an HTTPError keeps its code and anything else is
// a 500 that hides the cause.
func JSONError(err any, opts ...JSONOption) Response {
	j := &jsonResponse{status: http.StatusInternalServerError}
	switch e := err.(type) {
	case *ErrorDetail:
		j.body.Error = e
	case error:
		j.body.Error, j.status = describeError(e)
	}
	return j.apply(opts)
}

func describeError(err error) (*ErrorDetail, int) {
	var verr ValidationError
	if errors.As(err, &verr) {
		detail := &ErrorDetail{Code: "validation_error", Message: verr.Error()}
		if len(verr) > 0 {
			detail.Details = make(map[string][]string, len(verr))
			for field, msgs := range verr {
				detail.Details[field] = slices.Clone(msgs)
			}
		}
		return detail, http.StatusUnprocessableEntity
	}

	if httpErr, ok := asHTTPError(err); ok {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}, httpErr.Code
	}
	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}
