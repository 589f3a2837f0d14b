package stores

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vendly/edge/pkg/pg"
	"github.com/vendly/edge/pkg/tenant"
)

// Querier is the subset of *pgxpool.Pool the repository uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres loads stores from the stores table.
type Postgres struct {
	db Querier
}

var _ tenant.Provider = (*Postgres)(nil)

// NewPostgres reads stores through db, usually a *pgxpool.Pool.
func NewPostgres(db Querier) *Postgres {
	return &Postgres{db: db}
}

const selectBySlug = `
SELECT id, slug, name, COALESCE(logo_url, ''), COALESCE(custom_domain, ''), active, created_at
FROM stores
WHERE slug = $1`

// GetBySlug maps a missing row to tenant.ErrTenantNotFound.
func (p *Postgres) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := p.db.QueryRow(ctx, selectBySlug, slug).Scan(
		&t.ID, &t.Slug, &t.Name, &t.LogoURL, &t.CustomDomain, &t.Active, &t.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", tenant.ErrTenantNotFound, slug)
		}
		return nil, fmt.Errorf("stores: get %q: %w", slug, err)
	}
	return &t, nil
}
