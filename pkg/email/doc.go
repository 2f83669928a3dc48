// Package email sends the portal's transactional messages.
//
// EmailSender is implemented by the Postmark client for production and by
// DevSender, which writes each message to disk as an HTML body plus JSON
// metadata. New picks one from Config:
//
//	sender, err := email.New(cfg, log)
//	notifier := email.NewNotifier(sender, site.Organization.Name, site.Organization.Email)
//	err = notifier.Welcome(ctx, member.Email, templates.WelcomeData{FirstName: member.FirstName})
//
// Bodies are templ components from the templates subpackage. Parameter and
// configuration problems wrap ErrInvalidParams and ErrInvalidConfig; delivery
// failures wrap ErrFailedToSendEmail.
package email
