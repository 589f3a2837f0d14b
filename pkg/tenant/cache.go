package tenant

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache sits in front of a Provider. Implementations own their TTL.
type Cache interface {
	Get(ctx context.Context, slug string) (*Tenant, bool)
	Set(ctx context.Context, slug string, t *Tenant)
	Delete(ctx context.Context, slug string)
	Close() error
}

// Defaults for NewInMemoryCache.
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

type memoryCache struct {
	lru *expirable.LRU[string, *Tenant]
}

// NewInMemoryCache returns a size-bounded LRU whose entries expire after
// ttl. Non-positive arguments fall back to the defaults.
func NewInMemoryCache(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &memoryCache{lru: expirable.NewLRU[string, *Tenant](size, nil, ttl)}
}

// Get and Set copy the record so callers never share the cached value.
func (c *memoryCache) Get(_ context.Context, slug string) (*Tenant, bool) {
	t, ok := c.lru.Get(slug)
	if !ok || t == nil {
		return nil, false
	}
	cp := *t
	return &cp, true
}

func (c *memoryCache) Set(_ context.Context, slug string, t *Tenant) {
	if t == nil {
		return
	}
	cp := *t
	c.lru.Add(slug, &cp)
}

func (c *memoryCache) Delete(_ context.Context, slug string) {
	c.lru.Remove(slug)
}

func (c *memoryCache) Close() error {
	c.lru.Purge()
	return nil
}

type noOpCache struct{}

// NewNoOpCache returns a cache that never hits.
func NewNoOpCache() Cache { return noOpCache{} }

func (noOpCache) Get(context.Context, string) (*Tenant, bool) { return nil, false }
func (noOpCache) Set(context.Context, string, *Tenant)        {}
func (noOpCache) Delete(context.Context, string)              {}
func (noOpCache) Close() error                                { return nil }
