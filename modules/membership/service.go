package membership

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcucsya/portal/pkg/email"
	"github.com/mcucsya/portal/pkg/email/templates"
	"github.com/mcucsya/portal/pkg/feature"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/logger"
	"github.com/mcucsya/portal/pkg/metrics"
	"github.com/mcucsya/portal/pkg/pagination"
	"github.com/mcucsya/portal/pkg/siteconfig"
	"github.com/mcucsya/portal/pkg/validator"
)

// Service runs registration and contact submissions.
type Service struct {
	site     *siteconfig.Site
	engine   *form.Engine
	members  MemberStore
	contacts ContactStore
	notifier *email.Notifier
	flags    feature.Provider
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier enables welcome and contact forwarding e-mails. They are sent
// only while the notifications flag is enabled.
func WithNotifier(n *email.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithFlags sets the feature flag provider. Without one every flag the site
// document declares is used as is.
func WithFlags(p feature.Provider) Option {
	return func(s *Service) { s.flags = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock sets the time source of member and contact timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. The engine must be built from the site's
// validation config.
func NewService(site *siteconfig.Site, engine *form.Engine, members MemberStore, contacts ContactStore, opts ...Option) (*Service, error) {
	s := &Service{
		site:     site,
		engine:   engine,
		members:  members,
		contacts: contacts,
		log:      logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.flags == nil {
		flags, err := feature.NewMemoryProvider(site.FeatureFlags(), nil)
		if err != nil {
			return nil, err
		}
		s.flags = flags
	}
	s.log = s.log.With(logger.Component("membership"))
	return s, nil
}

// Site returns the site document the service validates against.
func (s *Service) Site() *siteconfig.Site { return s.site }

// Flags returns the feature flag provider of the service.
func (s *Service) Flags() feature.Provider { return s.flags }

// Register validates rec and stores the new member. An invalid submission is
// reported through the returned Result with a nil error; the error is set
// only when the submission could not be processed.
func (s *Service) Register(ctx context.Context, rec form.Record) (Member, form.Result, error) {
	start := time.Now()
	log := s.log.With(logger.Form(siteconfig.FormRegistration))

	if !feature.Enabled(ctx, s.flags, feature.MemberRegistration) {
		return Member{}, form.Result{}, ErrRegistrationClosed
	}

	rec, res, err := Validate(s.site, s.engine, siteconfig.FormRegistration, rec)
	if err != nil {
		return Member{}, res, err
	}

	m := newMember(rec, s.now())
	if res.IsValid {
		dups, err := duplicateChecks(ctx, s.site, s.members, m)
		if err != nil {
			metrics.ObserveSubmission(siteconfig.FormRegistration, metrics.StatusFailed, time.Since(start))
			log.ErrorContext(ctx, "duplicate lookup failed", logger.Error(err))
			return Member{}, res, err
		}
		res = res.Merge(dups)
	}
	metrics.ObserveValidation(siteconfig.FormRegistration, res)

	if !res.IsValid {
		metrics.ObserveSubmission(siteconfig.FormRegistration, rejectionStatus(res), time.Since(start))
		log.InfoContext(ctx, "registration rejected", logger.Fields(res.Fields()))
		return Member{}, res, nil
	}

	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, ErrDuplicateMember) {
			// Lost a race with a concurrent registration of the same person.
			res = res.Merge(validator.ValidationErrors{{
				Field:          form.FieldEmail,
				Message:        s.site.Messages.Validation.EmailExists,
				TranslationKey: validator.KeyDuplicate,
			}})
			metrics.ObserveSubmission(siteconfig.FormRegistration, metrics.StatusDuplicate, time.Since(start))
			return Member{}, res, nil
		}
		metrics.ObserveSubmission(siteconfig.FormRegistration, metrics.StatusFailed, time.Since(start))
		log.ErrorContext(ctx, "failed to store member", logger.Error(err))
		return Member{}, res, err
	}

	metrics.ObserveSubmission(siteconfig.FormRegistration, metrics.StatusAccepted, time.Since(start))
	log.InfoContext(ctx, "member registered", logger.MemberID(m.ID))

	if s.notify(ctx) {
		constituency := m.Constituency
		if c, ok := s.site.Constituency(m.Constituency); ok {
			constituency = c.Name
		}
		err := s.notifier.Welcome(ctx, m.Email, templates.WelcomeData{
			FirstName:    m.FirstName,
			Constituency: constituency,
		})
		if err != nil {
			log.ErrorContext(ctx, "failed to send welcome email", logger.MemberID(m.ID), logger.Error(err))
		}
	}
	return m, res, nil
}

// SendContact validates rec, stores the message and forwards it to the
// organization inbox.
func (s *Service) SendContact(ctx context.Context, rec form.Record) (Contact, form.Result, error) {
	start := time.Now()
	log := s.log.With(logger.Form(siteconfig.FormContact))

	_, res, err := Validate(s.site, s.engine, siteconfig.FormContact, rec)
	if err != nil {
		return Contact{}, res, err
	}
	metrics.ObserveValidation(siteconfig.FormContact, res)
	if !res.IsValid {
		metrics.ObserveSubmission(siteconfig.FormContact, metrics.StatusRejected, time.Since(start))
		log.InfoContext(ctx, "contact message rejected", logger.Fields(res.Fields()))
		return Contact{}, res, nil
	}

	c := newContact(rec, s.now())
	if err := s.contacts.SaveContact(ctx, c); err != nil {
		metrics.ObserveSubmission(siteconfig.FormContact, metrics.StatusFailed, time.Since(start))
		log.ErrorContext(ctx, "failed to store contact message", logger.Error(err))
		return Contact{}, res, err
	}
	metrics.ObserveSubmission(siteconfig.FormContact, metrics.StatusAccepted, time.Since(start))

	if s.notify(ctx) {
		err := s.notifier.ForwardContact(ctx, templates.ContactData{
			Name:    c.Name,
			Email:   c.Email,
			Subject: c.Subject,
			Message: c.Message,
		})
		if err != nil {
			log.ErrorContext(ctx, "failed to forward contact message", logger.Error(err))
		}
	}
	return c, res, nil
}

// Directory returns one page of registered members, formatted for listing.
func (s *Service) Directory(ctx context.Context, page, perPage int) (pagination.Page[DirectoryEntry], error) {
	total, err := s.members.Count(ctx)
	if err != nil {
		return pagination.Page[DirectoryEntry]{}, err
	}
	offset, limit := pagination.Window(page, perPage)
	members, err := s.members.List(ctx, offset, limit)
	if err != nil {
		return pagination.Page[DirectoryEntry]{}, err
	}

	now := s.now()
	entries := make([]DirectoryEntry, len(members))
	for i, m := range members {
		entries[i] = m.directoryEntry(s.site.UI.DateFormat, now)
	}
	return pagination.New(entries, total, page, perPage), nil
}

// Stats counts members in total and per constituency. Every declared
// constituency is listed, with zero when nobody registered from it.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := s.members.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	counts, err := s.members.CountByConstituency(ctx)
	if err != nil {
		return Stats{}, err
	}
	constituencies := s.site.ConstituencyList()
	for _, c := range constituencies {
		if _, ok := counts[c.ID]; !ok {
			counts[c.ID] = 0
		}
	}
	return Stats{
		TotalMembers:          total,
		Constituencies:        len(constituencies),
		MembersByConstituency: counts,
	}, nil
}

func (s *Service) notify(ctx context.Context) bool {
	return s.notifier != nil && feature.Enabled(ctx, s.flags, feature.Notifications)
}

func rejectionStatus(res form.Result) string {
	for _, d := range res.Details {
		if d.TranslationKey == validator.KeyDuplicate {
			return metrics.StatusDuplicate
		}
	}
	return metrics.StatusRejected
}
