package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// namespace for deterministic IDs of seeded stores.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("stores.vendly.local"))

// MemoryProvider serves stores from a map. Used in development when no
// database is configured, and in tests.
type MemoryProvider struct {
	mu     sync.RWMutex
	stores map[string]*Tenant
}

// NewMemoryProvider returns a provider holding stores, keyed by slug.
func NewMemoryProvider(stores ...*Tenant) *MemoryProvider {
	p := &MemoryProvider{stores: make(map[string]*Tenant, len(stores))}
	for _, t := range stores {
		p.Put(t)
	}
	return p
}

// Put adds or replaces a store.
func (p *MemoryProvider) Put(t *Tenant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stores[NormalizeSlug(t.Slug)] = t
}

// GetBySlug returns a copy of the stored record or ErrTenantNotFound.
func (p *MemoryProvider) GetBySlug(_ context.Context, slug string) (*Tenant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.stores[NormalizeSlug(slug)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, slug)
	}
	cp := *t
	return &cp, nil
}

// ParseSeed reads a comma-separated list of slug[:Display Name] entries,
// e.g. "acme:Acme Goods,bolt". Seeded stores are active.
func ParseSeed(s string) ([]*Tenant, error) {
	var (
		out  []*Tenant
		errs []error
	)
	now := time.Now().UTC()
	for entry := range strings.SplitSeq(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		slug, name, _ := strings.Cut(entry, ":")
		slug = NormalizeSlug(slug)
		if !ValidSlug(slug) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSeed, entry))
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = slug
		}
		out = append(out, &Tenant{
			ID:        uuid.NewSHA1(seedNamespace, []byte(slug)),
			Slug:      slug,
			Name:      name,
			Active:    true,
			CreatedAt: now,
		})
	}
	return out, errors.Join(errs...)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound)
}
