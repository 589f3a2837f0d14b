package stores_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendly/edge/pkg/tenant"
	"github.com/vendly/edge/svc/stores"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

type fakeDB struct {
	row  fakeRow
	args []any
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	db.args = args
	return db.row
}

func TestPostgres_GetBySlug(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		db := &fakeDB{row: fakeRow{values: []any{id, "acme", "Acme", "https://cdn/logo.png", "", true, created}}}

		got, err := stores.NewPostgres(db).GetBySlug(context.Background(), "acme")

		require.NoError(t, err)
		assert.Equal(t, []any{"acme"}, db.args)
		assert.Equal(t, &tenant.Tenant{
			ID: id, Slug: "acme", Name: "Acme", LogoURL: "https://cdn/logo.png",
			Active: true, CreatedAt: created,
		}, got)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

		_, err := stores.NewPostgres(db).GetBySlug(context.Background(), "ghost")

		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("conn reset")
		db := &fakeDB{row: fakeRow{err: boom}}

		_, err := stores.NewPostgres(db).GetBySlug(context.Background(), "acme")

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, tenant.ErrTenantNotFound)
	})
}
