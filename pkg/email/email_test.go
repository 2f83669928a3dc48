package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/config"
	"github.com/mcucsya/portal/pkg/email"
	"github.com/mcucsya/portal/pkg/email/templates"
	"github.com/mcucsya/portal/pkg/logger"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{SendTo: "user@example.com", Subject: "Hi", BodyHTML: "<p>x</p>"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
		errMsg string
	}{
		{"bad recipient", func(p *email.SendEmailParams) { p.SendTo = "nope" }, "SendTo"},
		{"bad reply-to", func(p *email.SendEmailParams) { p.ReplyTo = "nope" }, "ReplyTo"},
		{"blank subject", func(p *email.SendEmailParams) { p.Subject = "  " }, "Subject"},
		{"empty body", func(p *email.SendEmailParams) { p.BodyHTML = "" }, "BodyHTML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	var cfg email.Config
	require.NoError(t, config.Parse(&cfg, map[string]string{}))
	assert.False(t, cfg.UsesPostmark())
	assert.Equal(t, "info@mcucsya.org", cfg.SupportEmail)
	assert.Equal(t, "tmp/emails", cfg.DevDir)
}

func TestNew(t *testing.T) {
	t.Parallel()

	sender, err := email.New(email.Config{DevDir: t.TempDir()}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, sender)

	_, err = email.New(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "not-an-email",
		SupportEmail:         "info@mcucsya.org",
	}, nil)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	sender, err = email.New(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@mcucsya.org",
		SupportEmail:         "info@mcucsya.org",
	}, nil)
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewPostmarkClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := email.NewPostmarkClient(email.Config{PostmarkAccountToken: "a", SenderEmail: "a@b.co", SupportEmail: "a@b.co"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "PostmarkServerToken")

	assert.Panics(t, func() { email.MustNewPostmarkClient(email.Config{}) })
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "jane@example.com",
		Subject:  "Welcome to MCUCSYA!",
		BodyHTML: "<p>hello</p>",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	assert.True(t, strings.HasSuffix(htmlFile, "_welcome_to_mcucsya.html"), htmlFile)

	body, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", string(body))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "jane@example.com", meta["send_to"])

	err = sender.SendEmail(context.Background(), email.SendEmailParams{SendTo: "bad"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestNotifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := &MockEmailSender{}
	m.On("SendEmail", ctx, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "jane@example.com" && p.Tag == "welcome" &&
			p.Subject == "Welcome to MCUCSYA" &&
			strings.Contains(p.BodyHTML, "Welcome, Jane &amp; Co!") &&
			strings.Contains(p.BodyHTML, "Machakos Town")
	})).Return(nil).Once()
	m.On("SendEmail", ctx, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "info@mcucsya.org" && p.ReplyTo == "john@example.com" &&
			p.Subject == "[Contact] Events" &&
			strings.Contains(p.BodyHTML, "line one<br>&lt;b&gt;line two&lt;/b&gt;")
	})).Return(nil).Once()

	n := email.NewNotifier(m, "MCUCSYA", "info@mcucsya.org")
	require.NoError(t, n.Welcome(ctx, "jane@example.com", templates.WelcomeData{FirstName: "Jane & Co", Constituency: "Machakos Town"}))
	require.NoError(t, n.ForwardContact(ctx, templates.ContactData{
		Name:    "John",
		Email:   "john@example.com",
		Subject: "Events",
		Message: "line one\n<b>line two</b>",
	}))
	m.AssertExpectations(t)
}
