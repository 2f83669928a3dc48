package form_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/validator"
)

func TestFromValues(t *testing.T) {
	t.Parallel()

	rec := form.FromValues(url.Values{
		"email": {"a@b.com", "c@d.com"},
		"phone": {},
	})

	assert.Equal(t, "a@b.com", rec.Get("email"))
	assert.False(t, rec.Present("phone"))
	assert.False(t, rec.Present("missing"))
	_, ok := rec["phone"]
	assert.True(t, ok)
}

func TestRecord_Clone(t *testing.T) {
	t.Parallel()

	rec := form.Record{"email": "a@b.com"}
	clone := rec.Clone()
	clone["email"] = "changed"

	assert.Equal(t, "a@b.com", rec["email"])
	assert.NotNil(t, form.Record(nil).Clone())
}

func TestResult_Merge(t *testing.T) {
	t.Parallel()
	res := newEngine(t).Validate(validRecord(), required)
	require.True(t, res.IsValid)

	merged := res.Merge(validator.ValidationErrors{{
		Field:          "email",
		Message:        "This email is already registered.",
		TranslationKey: validator.KeyDuplicate,
	}})

	assert.False(t, merged.IsValid)
	assert.Equal(t, map[string]string{"email": "This email is already registered."}, merged.Errors)
	assert.True(t, res.IsValid, "original result is unchanged")

	var verrs validator.ValidationErrors
	require.True(t, errors.As(merged.Err(), &verrs))
	assert.Len(t, verrs, 1)

	assert.Equal(t, res, res.Merge(nil))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, form.MissingField, form.KindOf(validator.KeyRequired))
	assert.Equal(t, form.OutOfRangeAge, form.KindOf(validator.KeyAgeBetween))
	assert.Equal(t, form.MalformedValue, form.KindOf(validator.KeyEmail))
	assert.Equal(t, form.MalformedValue, form.KindOf(validator.KeyDuplicate))
}
