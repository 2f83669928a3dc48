package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/binder"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/pagination"
)

func TestRecord_URLEncoded(t *testing.T) {
	t.Parallel()

	body := url.Values{"firstName": {"Jane", "ignored"}, "email": {" a@b.com "}, "lastName": {""}}
	r := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	var rec form.Record
	require.NoError(t, binder.Record()(r, &rec))
	assert.Equal(t, form.Record{"firstName": "Jane", "email": " a@b.com ", "lastName": ""}, rec)
}

func TestRecord_Multipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "John"))
	require.NoError(t, mw.WriteField("subject", "Events"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/contact", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	rec, err := binder.ReadRecord(r)
	require.NoError(t, err)
	assert.Equal(t, form.Record{"name": "John", "subject": "Events"}, rec)
}

func TestRecord_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    form.Record
		wantErr error
	}{
		{"strings", `{"email":"a@b.com","firstName":"Jane"}`, form.Record{"email": "a@b.com", "firstName": "Jane"}, nil},
		{"scalars", `{"phone":712345678,"consent":true,"lastName":null}`, form.Record{"phone": "712345678", "consent": "true"}, nil},
		{"nested", `{"email":{"x":1}}`, nil, binder.ErrFailedToParseJSON},
		{"array", `["a"]`, nil, binder.ErrFailedToParseJSON},
		{"empty", ``, nil, binder.ErrFailedToParseJSON},
		{"trailing data", `{"a":"b"}{"c":"d"}`, nil, binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/members/register", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			assert.True(t, binder.IsJSON(r))

			rec, err := binder.ReadRecord(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestRecord_Errors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	_, err := binder.ReadRecord(r)
	assert.ErrorIs(t, err, binder.ErrMissingContentType)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	r.Header.Set("Content-Type", "text/plain")
	_, err = binder.ReadRecord(r)
	assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)

	var wrong map[string]string
	assert.ErrorIs(t, binder.Record()(r, &wrong), binder.ErrInvalidTarget)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type request struct {
		pagination.Params
		Constituency string   `query:"constituency"`
		Tags         []string `query:"tags"`
		Skipped      string   `query:"-"`
	}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/members?page=2&per_page=5&constituency=masinga&tags=a,b&Skipped=x", nil)
	var req request
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.PerPage)
	assert.Equal(t, "masinga", req.Constituency)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Empty(t, req.Skipped)

	bad := httptest.NewRequest(http.MethodGet, "/?page=two", nil)
	var p pagination.Params
	assert.ErrorIs(t, binder.Query()(bad, &p), binder.ErrFailedToParseQuery)
}
