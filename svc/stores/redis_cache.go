package stores

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/tenant"
)

// DefaultKeyPrefix namespaces store entries: edge:store:<slug>.
const DefaultKeyPrefix = "edge:store:"

// RedisCache shares store lookups between edge replicas. Redis failures
// degrade to cache misses; they never fail a request.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

var _ tenant.Cache = (*RedisCache)(nil)

// CacheOption configures a RedisCache.
type CacheOption func(*RedisCache)

// WithKeyPrefix replaces DefaultKeyPrefix, e.g. to share one Redis
// between environments.
func WithKeyPrefix(p string) CacheOption {
	return func(c *RedisCache) { c.prefix = p }
}

// WithCacheLogger sets where degraded Redis calls are reported.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *RedisCache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewRedisCache stores entries as JSON for ttl, or DefaultCacheTTL when
// ttl is not positive.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration, opts ...CacheOption) *RedisCache {
	if ttl <= 0 {
		ttl = tenant.DefaultCacheTTL
	}
	c := &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: DefaultKeyPrefix,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get reports a miss on any Redis or decoding error.
func (c *RedisCache) Get(ctx context.Context, slug string) (*tenant.Tenant, bool) {
	raw, err := c.client.Get(ctx, c.prefix+slug).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "store cache get", logger.Component("stores"), logger.Tenant(slug), logger.Error(err))
		}
		return nil, false
	}
	var t tenant.Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		c.log.WarnContext(ctx, "store cache decode", logger.Component("stores"), logger.Tenant(slug), logger.Error(err))
		return nil, false
	}
	return &t, true
}

// Set logs and drops write failures.
func (c *RedisCache) Set(ctx context.Context, slug string, t *tenant.Tenant) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+slug, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "store cache set", logger.Component("stores"), logger.Tenant(slug), logger.Error(err))
	}
}

// Delete removes slug so the next request reloads it.
func (c *RedisCache) Delete(ctx context.Context, slug string) {
	if err := c.client.Del(ctx, c.prefix+slug).Err(); err != nil {
		c.log.WarnContext(ctx, "store cache delete", logger.Component("stores"), logger.Tenant(slug), logger.Error(err))
	}
}

// Close is a no-op; the client belongs to the caller.
func (c *RedisCache) Close() error { return nil }
