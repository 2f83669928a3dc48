package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/form"
)

func runValidate(t *testing.T, record string, args ...string) (validationReport, error) {
	t.Helper()
	config.Reset()

	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(record), 0o600))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run(context.Background(), append([]string{"mcucsya", "validate", "--file", path}, args...))

	var report validationReport
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	}
	return report, err
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		report, err := runValidate(t, `{
			"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com",
			"phone": "0712345678", "dateOfBirth": "2005-01-01", "gender": "female",
			"constituency": "Machakos Town", "education": "diploma"
		}`)
		require.NoError(t, err)
		assert.True(t, report.IsValid)
		assert.Empty(t, report.Errors)
		assert.Equal(t, "registration", report.Form)
	})

	t.Run("invalid contact", func(t *testing.T) {
		report, err := runValidate(t, `{"name": "", "email": "x@y.com"}`, "--form", "contact")
		require.ErrorIs(t, err, errRecordInvalid)
		assert.False(t, report.IsValid)
		assert.Equal(t, "This field is required.", report.Errors["name"])
		assert.Equal(t, form.MissingField, report.Kinds["name"])
	})

	t.Run("unknown form", func(t *testing.T) {
		_, err := runValidate(t, `{}`, "--form", "survey")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errRecordInvalid)
	})
}

func TestLoadAppConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	config.Reset()
	t.Cleanup(config.Reset)

	_, err := loadAppConfig()
	assert.Error(t, err)
}
