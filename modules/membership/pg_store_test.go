package membership_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/modules/membership"
	"github.com/mcucsya/portal/pkg/pg"
)

func TestPGStore(t *testing.T) {
	conn := os.Getenv("PG_CONN_URL")
	if conn == "" {
		t.Skip("PG_CONN_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString: conn,
		MaxOpenConns:     2,
		MinIdleConns:     1,
		RetryAttempts:    1,
		RetryInterval:    time.Second,
		MigrationsTable:  "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, membership.Migrate(ctx, pool, cfg, nil))
	_, err = pool.Exec(ctx, "TRUNCATE members, contacts")
	require.NoError(t, err)

	s := membership.NewPGStore(pool)
	m := membership.Member{
		ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "0712345678", DateOfBirth: "2004-05-12", Gender: "female",
		Constituency: "yatta", Education: "diploma", CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, s.Create(ctx, m))

	dup := m
	dup.ID = uuid.New()
	assert.ErrorIs(t, s.Create(ctx, dup), membership.ErrDuplicateMember)

	ok, err := s.ExistsByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)

	counts, err := s.CountByConstituency(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"yatta": 1}, counts)

	require.NoError(t, s.SaveContact(ctx, membership.Contact{ID: uuid.New(), Name: "A", Email: "a@b.com", Subject: "s", Message: "m", CreatedAt: time.Now()}))
}
