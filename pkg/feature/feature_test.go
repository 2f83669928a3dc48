package feature_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/feature"
)

var seed = map[string]bool{
	feature.MemberRegistration: true,
	feature.MemberDirectory:    false,
}

func TestMemoryProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p, err := feature.NewMemoryProvider(seed, nil)
	require.NoError(t, err)

	on, err := p.IsEnabled(ctx, feature.MemberRegistration)
	require.NoError(t, err)
	assert.True(t, on)

	_, err = p.IsEnabled(ctx, "darkMode")
	assert.ErrorIs(t, err, feature.ErrFlagNotFound)
	assert.False(t, feature.Enabled(ctx, p, "darkMode"))

	require.NoError(t, p.SetEnabled(ctx, feature.MemberDirectory, true))
	assert.True(t, feature.Enabled(ctx, p, feature.MemberDirectory))
	assert.ErrorIs(t, p.SetEnabled(ctx, "darkMode", true), feature.ErrFlagNotFound)

	flags, err := p.ListFlags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []feature.Flag{
		{Name: feature.MemberDirectory, Enabled: true},
		{Name: feature.MemberRegistration, Enabled: true},
	}, flags)
}

func TestMemoryProvider_Overrides(t *testing.T) {
	t.Parallel()

	var cfg feature.Config
	require.NoError(t, config.Parse(&cfg, map[string]string{"FEATURE_FLAGS": "memberDirectory:true,memberRegistration:false"}))

	p, err := feature.NewMemoryProvider(seed, cfg.Overrides)
	require.NoError(t, err)
	assert.True(t, feature.Enabled(context.Background(), p, feature.MemberDirectory))
	assert.False(t, feature.Enabled(context.Background(), p, feature.MemberRegistration))

	_, err = feature.NewMemoryProvider(seed, map[string]bool{"unknown": true})
	assert.ErrorIs(t, err, feature.ErrFlagNotFound)

	_, err = feature.NewMemoryProvider(map[string]bool{"": true}, nil)
	assert.ErrorIs(t, err, feature.ErrInvalidFlag)
}

func TestRequire(t *testing.T) {
	t.Parallel()

	p, err := feature.NewMemoryProvider(seed, nil)
	require.NoError(t, err)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	feature.Require(p, feature.MemberRegistration, nil)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	feature.Require(p, feature.MemberDirectory, nil)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	gone := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusGone) })
	rec = httptest.NewRecorder()
	feature.Require(p, feature.MemberDirectory, gone)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGone, rec.Code)
}
