package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/config"
)

type storeConfig struct {
	Driver string `env:"TEST_STORE_DRIVER" envDefault:"memory"`
	Prefix string `env:"TEST_STORE_PREFIX" envDefault:"mcucsya:"`
}

type ageOverrides struct {
	MinAge *int `env:"TEST_MIN_AGE"`
	MaxAge int  `env:"TEST_MAX_AGE" envDefault:"35"`
}

type requiredConfig struct {
	URL string `env:"TEST_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_STORE_DRIVER", "redis")
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg storeConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis", cfg.Driver)
	assert.Equal(t, "mcucsya:", cfg.Prefix)

	t.Setenv("TEST_STORE_DRIVER", "postgres")

	var cached storeConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "redis", cached.Driver, "second load is served from cache")

	config.Reset()

	var reloaded storeConfig
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "postgres", reloaded.Driver)
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.ErrorIs(t, config.Load[storeConfig](nil), config.ErrNilPointer)
	assert.Panics(t, func() {
		var c requiredConfig
		config.MustLoad(&c)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("unset pointer stays nil", func(t *testing.T) {
		t.Parallel()
		var o ageOverrides
		require.NoError(t, config.Parse(&o, map[string]string{}))
		assert.Nil(t, o.MinAge)
		assert.Equal(t, 35, o.MaxAge)
	})

	t.Run("set pointer is populated", func(t *testing.T) {
		t.Parallel()
		var o ageOverrides
		require.NoError(t, config.Parse(&o, map[string]string{"TEST_MIN_AGE": "16"}))
		require.NotNil(t, o.MinAge)
		assert.Equal(t, 16, *o.MinAge)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()
		var o ageOverrides
		err := config.Parse(&o, map[string]string{"TEST_MAX_AGE": "old"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Parse[ageOverrides](nil, nil), config.ErrNilPointer)
	})
}
