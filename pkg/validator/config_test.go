package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/validator"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults fill empty params", func(t *testing.T) {
		t.Parallel()
		cfg, err := validator.NewConfig(validator.ConfigParams{MinAge: 16, MaxAge: 35})
		require.NoError(t, err)

		assert.Equal(t, validator.DefaultEmailPattern, cfg.Email.String())
		assert.Equal(t, validator.DefaultPhonePattern, cfg.Phone.String())
		assert.Equal(t, validator.DefaultNamePattern, cfg.Name.String())
		assert.Equal(t, validator.AgeRange{MinAge: 16, MaxAge: 35}, cfg.Ages)
		assert.Equal(t, validator.DefaultMessages(), cfg.Messages)
	})

	t.Run("custom messages override only what is set", func(t *testing.T) {
		t.Parallel()
		cfg, err := validator.NewConfig(validator.ConfigParams{
			MinAge:   13,
			MaxAge:   35,
			Messages: validator.Messages{Required: "Required"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Required", cfg.Messages.Required)
		assert.Equal(t, validator.DefaultMessages().InvalidEmail, cfg.Messages.InvalidEmail)
	})

	t.Run("rejects inverted age range", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewConfig(validator.ConfigParams{MinAge: 40, MaxAge: 35})
		require.ErrorIs(t, err, validator.ErrInvalidConfig)
		assert.ErrorIs(t, err, validator.ErrInvalidAgeRange)
	})

	t.Run("rejects negative age", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewConfig(validator.ConfigParams{MinAge: -1, MaxAge: 35})
		assert.ErrorIs(t, err, validator.ErrInvalidAgeRange)
	})

	t.Run("rejects broken pattern", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewConfig(validator.ConfigParams{PhonePattern: "(", MinAge: 13, MaxAge: 35})
		require.ErrorIs(t, err, validator.ErrInvalidConfig)
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})
}

func TestConfig_AgeMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Age must be between 13 and 35 years", validator.DefaultConfig().AgeMessage())

	cfg, err := validator.NewConfig(validator.ConfigParams{MinAge: 16, MaxAge: 30})
	require.NoError(t, err)
	assert.Equal(t, "Age must be between 16 and 30 years", cfg.AgeMessage())
}
