package membership_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/feature"
	"github.com/mcucsya/portal/pkg/form"
	"github.com/mcucsya/portal/pkg/siteconfig"
)

func TestNormalizeConstituency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "machakos_town", membership.NormalizeConstituency("Machakos Town"))
	assert.Equal(t, "machakos_town", membership.NormalizeConstituency("machakos_town"))
	assert.Equal(t, "yatta", membership.NormalizeConstituency("  YATTA "))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	cfg, err := f.site.ValidationConfig()
	require.NoError(t, err)
	engine := form.New(cfg)

	t.Run("valid registration normalizes constituency", func(t *testing.T) {
		t.Parallel()
		rec, res, err := membership.Validate(f.site, engine, siteconfig.FormRegistration, validRegistration())
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "machakos_town", rec.Get("constituency"))
	})

	t.Run("undeclared options fail", func(t *testing.T) {
		t.Parallel()
		rec := validRegistration()
		rec["gender"] = "unknown"
		rec["education"] = "university"
		rec["constituency"] = "Nairobi"

		_, res, err := membership.Validate(f.site, engine, siteconfig.FormRegistration, rec)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		msg := f.site.Messages.Validation.InvalidOption
		assert.Equal(t, map[string]string{"gender": msg, "education": msg, "constituency": msg}, res.Errors)
	})

	t.Run("option checks wait for the engine", func(t *testing.T) {
		t.Parallel()
		rec := validRegistration()
		rec["gender"] = "unknown"
		rec["email"] = "not-an-email"

		_, res, err := membership.Validate(f.site, engine, siteconfig.FormRegistration, rec)
		require.NoError(t, err)
		assert.Equal(t, []string{"email"}, res.Fields())
	})

	t.Run("contact form", func(t *testing.T) {
		t.Parallel()
		_, res, err := membership.Validate(f.site, engine, siteconfig.FormContact, form.Record{"email": "x@y.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"message", "name", "subject"}, res.Fields())
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		_, _, err := membership.Validate(f.site, engine, "survey", form.Record{})
		assert.ErrorIs(t, err, siteconfig.ErrUnknownForm)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores a cleaned member and sends a welcome email", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil)
		ctx := context.Background()

		m, res, err := f.svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		require.True(t, res.IsValid)

		assert.NotEmpty(t, m.ID)
		assert.Equal(t, "Jane", m.FirstName)
		assert.Equal(t, "Mwikali", m.LastName)
		assert.Equal(t, "jane@example.com", m.Email)
		assert.Equal(t, "machakos_town", m.Constituency)
		assert.Equal(t, fixedNow, m.CreatedAt)

		n, err := f.store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		sent := f.sender.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "jane@example.com", sent[0].SendTo)
		assert.Contains(t, sent[0].BodyHTML, "Machakos Town")
	})

	t.Run("duplicates are field errors", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil)
		ctx := context.Background()

		_, _, err := f.svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		_, res, err := f.svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Equal(t, f.site.Messages.Validation.EmailExists, res.Errors["email"])
		assert.Equal(t, f.site.Messages.Validation.PhoneExists, res.Errors["phone"])

		n, err := f.store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("invalid record stores nothing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, nil)
		rec := validRegistration()
		rec["firstName"] = ""

		_, res, err := f.svc.Register(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"firstName": "This field is required."}, res.Errors)
		assert.Empty(t, f.sender.Sent())
	})

	t.Run("registration flag off", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, map[string]bool{feature.MemberRegistration: false})
		_, _, err := f.svc.Register(context.Background(), validRegistration())
		assert.ErrorIs(t, err, membership.ErrRegistrationClosed)
	})

	t.Run("notifications flag off skips email", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, map[string]bool{feature.Notifications: false})
		_, res, err := f.svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		assert.Empty(t, f.sender.Sent())
	})
}

func TestService_SendContact(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	c, res, err := f.svc.SendContact(ctx, validContact())
	require.NoError(t, err)
	require.True(t, res.IsValid)
	assert.Equal(t, "I would like to help with the next event.", c.Message)

	contacts, err := f.store.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, c.ID, contacts[0].ID)

	sent := f.sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, f.site.Organization.Email, sent[0].SendTo)
	assert.Equal(t, "john@example.com", sent[0].ReplyTo)
	assert.Equal(t, "[Contact] Volunteering", sent[0].Subject)

	_, res, err = f.svc.SendContact(ctx, form.Record{"name": "A"})
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Len(t, f.sender.Sent(), 1)
}

func TestService_DirectoryAndStats(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	phones := []string{"0712345601", "0712345602", "0712345603"}
	for i, phone := range phones {
		rec := validRegistration()
		rec["phone"] = phone
		rec["email"] = "member" + string(rune('a'+i)) + "@example.com"
		if i == 2 {
			rec["constituency"] = "yatta"
		}
		_, res, err := f.svc.Register(ctx, rec)
		require.NoError(t, err)
		require.True(t, res.IsValid, res.Errors)
	}

	page, err := f.svc.Directory(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "0712345603", page.Data[0].Phone)
	assert.Equal(t, "12/05/2004", page.Data[0].BornOn)
	assert.Equal(t, "10/03/2025", page.Data[0].JoinedOn)
	assert.Equal(t, 20, page.Data[0].Age)

	st, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalMembers)
	assert.Equal(t, 8, st.Constituencies)
	assert.Equal(t, 2, st.MembersByConstituency["machakos_town"])
	assert.Equal(t, 1, st.MembersByConstituency["yatta"])
	assert.Equal(t, 0, st.MembersByConstituency["kathiani"])
}
