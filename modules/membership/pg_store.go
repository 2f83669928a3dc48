package membership

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcucsya/portal/pkg/pg"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the schema migrations of the Postgres store.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate applies the Postgres store schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) error {
	return pg.Migrate(ctx, pool, cfg, Migrations(), log)
}

// PGStore is a Postgres backed MemberStore and ContactStore.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const memberColumns = `id, first_name, last_name, email, phone, date_of_birth, gender, constituency, education, created_at`

func (s *PGStore) Create(ctx context.Context, m Member) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO members (`+memberColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.DateOfBirth,
		m.Gender, m.Constituency, m.Education, m.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateMember
		}
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *PGStore) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := s.pool.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return found, nil
}

func (s *PGStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE lower(email) = lower($1))`, email)
}

func (s *PGStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE phone = $1)`, phone)
}

func (s *PGStore) List(ctx context.Context, offset, limit int) ([]Member, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY created_at, id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Member, error) {
		var m Member
		err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.DateOfBirth,
			&m.Gender, &m.Constituency, &m.Education, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return members, nil
}

func (s *PGStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM members`).Scan(&n); err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return n, nil
}

func (s *PGStore) CountByConstituency(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, `SELECT constituency, count(*) FROM members GROUP BY constituency`)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			constituency string
			n            int
		)
		if err := rows.Scan(&constituency, &n); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		counts[constituency] = n
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return counts, nil
}

func (s *PGStore) SaveContact(ctx context.Context, c Contact) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, email, subject, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Email, c.Subject, c.Message, c.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}
