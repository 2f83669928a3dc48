package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// postmarkSender delivers through Postmark's transactional API with open
// and HTML link tracking enabled.
type postmarkSender struct {
	api     *postmark.Client
	from    string
	support string
}

// NewPostmarkClient validates cfg and returns a Postmark-backed sender.
func NewPostmarkClient(cfg Config) (EmailSender, error) {
	var problems []string
	if cfg.PostmarkServerToken == "" {
		problems = append(problems, "PostmarkServerToken is required")
	}
	if cfg.PostmarkAccountToken == "" {
		problems = append(problems, "PostmarkAccountToken is required")
	}
	if !isAddress(cfg.SenderEmail) {
		problems = append(problems, "SenderEmail must be a valid email address")
	}
	if !isAddress(cfg.SupportEmail) {
		problems = append(problems, "SupportEmail must be a valid email address")
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, problems[0])
	}

	return &postmarkSender{
		api:     postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:    cfg.SenderEmail,
		support: cfg.SupportEmail,
	}, nil
}

// MustNewPostmarkClient panics where NewPostmarkClient would fail.
func MustNewPostmarkClient(cfg Config) EmailSender {
	s, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// SendEmail replies to params.ReplyTo, falling back to the support address.
func (p *postmarkSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	msg := postmark.Email{
		From:       p.from,
		ReplyTo:    p.support,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	}
	if params.ReplyTo != "" {
		msg.ReplyTo = params.ReplyTo
	}

	resp, err := p.api.SendEmail(ctx, msg)
	switch {
	case err != nil:
		return errors.Join(ErrFailedToSendEmail, err)
	case resp.ErrorCode > 0:
		return fmt.Errorf("%w: postmark code %d: %s", ErrFailedToSendEmail, resp.ErrorCode, resp.Message)
	}
	return nil
}
