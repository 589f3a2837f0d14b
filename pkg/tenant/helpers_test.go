package tenant_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vendly/edge/pkg/tenant"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	args := m.Called(ctx, slug)
	t, _ := args.Get(0).(*tenant.Tenant)
	return t, args.Error(1)
}

func store(slug string, active bool) *tenant.Tenant {
	return &tenant.Tenant{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      "Store " + slug,
		Active:    active,
		CreatedAt: time.Now(),
	}
}
