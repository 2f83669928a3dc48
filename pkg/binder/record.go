package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/mcucsya/portal/pkg/form"
)

// Size limits for request bodies.
const (
	DefaultMaxMemory   = 1 << 20
	DefaultMaxJSONSize = 1 << 20
)

// Record creates a binder that decodes a submitted form into *form.Record.
//
// Accepted bodies:
//   - application/x-www-form-urlencoded and multipart/form-data keep the
//     first value of each field. Uploaded files are ignored.
//   - application/json must be a flat object. Strings are kept as is,
//     numbers and booleans keep their literal text, null means absent.
//
// Values are not trimmed; whitespace handling belongs to validation.
func Record() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		dst, ok := v.(*form.Record)
		if !ok || dst == nil {
			return fmt.Errorf("%w: expected *form.Record, got %T", ErrInvalidTarget, v)
		}

		rec, err := ReadRecord(r)
		if err != nil {
			return err
		}
		*dst = rec
		return nil
	}
}

// ReadRecord decodes the request body into a new form.Record.
func ReadRecord(r *http.Request) (form.Record, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected a form or JSON body", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxMemory)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return form.FromValues(r.PostForm), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		defer r.MultipartForm.RemoveAll()
		return form.FromValues(r.MultipartForm.Value), nil

	case "application/json":
		return DecodeJSONRecord(r.Body)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// DecodeJSONRecord reads one flat JSON object from body into a form.Record.
func DecodeJSONRecord(body io.Reader) (form.Record, error) {
	raw, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if len(raw) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	rec := make(form.Record, len(obj))
	for key, val := range obj {
		switch x := val.(type) {
		case nil:
		case string:
			rec[key] = x
		case json.Number:
			rec[key] = x.String()
		case bool:
			rec[key] = fmt.Sprint(x)
		default:
			return nil, fmt.Errorf("%w: field %q must be a scalar", ErrFailedToParseJSON, key)
		}
	}
	return rec, nil
}

// IsJSON reports whether the request body is JSON.
func IsJSON(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return strings.EqualFold(mediaType, "application/json")
}
