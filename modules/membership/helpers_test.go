package membership_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/email"
	"github.com/mcucsya/portal/pkg/feature"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
	"github.com/mcucsya/portal/pkg/storage"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type recordingSender struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
}

func (s *recordingSender) SendEmail(_ context.Context, p email.SendEmailParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, p)
	return nil
}

func (s *recordingSender) Sent() []email.SendEmailParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.SendEmailParams(nil), s.sent...)
}

type fixture struct {
	site   *siteconfig.Site
	store  *membership.KVStore
	flags  *feature.MemoryProvider
	sender *recordingSender
	svc    *membership.Service
}

func newFixture(t *testing.T, overrides map[string]bool) fixture {
	t.Helper()

	site, err := siteconfig.Default()
	require.NoError(t, err)
	cfg, err := site.ValidationConfig()
	require.NoError(t, err)

	engine := form.New(cfg, form.WithClock(func() time.Time { return fixedNow }))
	store := membership.NewKVStore(storage.NewMemory(), site.Storage.Members, site.Storage.Contacts)
	flags, err := feature.NewMemoryProvider(site.FeatureFlags(), overrides)
	require.NoError(t, err)
	sender := &recordingSender{}

	svc, err := membership.NewService(site, engine, store, store,
		membership.WithFlags(flags),
		membership.WithNotifier(email.NewNotifier(sender, site.Organization.Acronym, site.Organization.Email)),
		membership.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	return fixture{site: site, store: store, flags: flags, sender: sender, svc: svc}
}

func validRegistration() form.Record {
	return form.Record{
		"firstName":    "jane",
		"lastName":     "mwikali",
		"email":        "Jane@Example.com",
		"phone":        "0712345678",
		"dateOfBirth":  "2004-05-12",
		"gender":       "female",
		"constituency": "Machakos Town",
		"education":    "bachelor",
	}
}

func validContact() form.Record {
	return form.Record{
		"name":    "John Kioko",
		"email":   "john@example.com",
		"subject": "Volunteering",
		"message": "I would like to <b>help</b> with the next event.",
	}
}
