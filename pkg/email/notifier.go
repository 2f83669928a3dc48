package email

import (
	"context"
	"fmt"

	"github.com/mcucsya/portal/pkg/email/templates"
)

// Notifier sends the portal's transactional messages.
type Notifier struct {
	sender  EmailSender
	orgName string
	inbox   string
}

// NewNotifier creates a Notifier. Contact messages are forwarded to inbox.
func NewNotifier(sender EmailSender, orgName, inbox string) *Notifier {
	return &Notifier{sender: sender, orgName: orgName, inbox: inbox}
}

// Welcome confirms a registration to the new member.
func (n *Notifier) Welcome(ctx context.Context, to string, data templates.WelcomeData) error {
	data.OrgName = n.orgName
	subject := "Welcome to " + n.orgName
	body, err := templates.Render(ctx, templates.Layout(subject, n.orgName, templates.Welcome(data)))
	if err != nil {
		return fmt.Errorf("%w: render welcome: %v", ErrFailedToSendEmail, err)
	}
	return n.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   to,
		Subject:  subject,
		BodyHTML: body,
		Tag:      "welcome",
	})
}

// ForwardContact delivers a contact message to the organization inbox with
// Reply-To set to the sender.
func (n *Notifier) ForwardContact(ctx context.Context, data templates.ContactData) error {
	subject := "[Contact] " + data.Subject
	body, err := templates.Render(ctx, templates.Layout(subject, n.orgName, templates.ContactForward(data)))
	if err != nil {
		return fmt.Errorf("%w: render contact: %v", ErrFailedToSendEmail, err)
	}
	return n.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   n.inbox,
		ReplyTo:  data.Email,
		Subject:  subject,
		BodyHTML: body,
		Tag:      "contact",
	})
}
