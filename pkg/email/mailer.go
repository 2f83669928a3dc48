package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"`
}

var addressCheck = validator.DefaultConfig()

func isAddress(s string) bool {
	return addressCheck.IsValidEmail(s)
}

// Validate checks that the recipient, subject and body are usable.
func (p SendEmailParams) Validate() error {
	var errs []error
	if !isAddress(p.SendTo) {
		errs = append(errs, errors.New("SendTo must be a valid email address"))
	}
	if p.ReplyTo != "" && !isAddress(p.ReplyTo) {
		errs = append(errs, errors.New("ReplyTo must be a valid email address"))
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs = append(errs, errors.New("Subject is required"))
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		errs = append(errs, errors.New("BodyHTML is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidParams}, errs...)...)
	}
	return nil
}

// New picks the Postmark client when tokens are configured and the
// development sender otherwise.
func New(cfg Config, log *slog.Logger) (EmailSender, error) {
	if cfg.UsesPostmark() {
		return NewPostmarkClient(cfg)
	}
	if log != nil {
		log.Warn("postmark tokens not set, writing emails to disk",
			logger.Component("email"), slog.String("dir", cfg.DevDir))
	}
	return NewDevSender(cfg.DevDir), nil
}
