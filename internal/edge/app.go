// Package edge assembles the Vendly edge gateway: configuration, store
// catalogue, routing policy, auth gate and the listeners that serve them.
package edge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/vendly/edge/internal/db"
	"github.com/vendly/edge/pkg/authgate"
	"github.com/vendly/edge/pkg/environment"
	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/httpserver"
	"github.com/vendly/edge/pkg/metrics"
	"github.com/vendly/edge/pkg/pg"
	"github.com/vendly/edge/pkg/redis"
	"github.com/vendly/edge/pkg/tenant"
	"github.com/vendly/edge/svc/stores"
)

// App owns every long-lived dependency of the edge process.
type App struct {
	cfg Config
	env environment.Environment
	log *slog.Logger

	policy *hostrouter.Policy
	gate   *authgate.Gate

	stores tenant.Provider
	cache  tenant.Cache

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	checks   []httpserver.Check

	upstream   http.Handler
	storefront http.Handler
	platform   http.Handler

	closers []func() error
}

// New validates cfg and opens the configured backing services. Call Close
// when done, also after Run returns.
func New(ctx context.Context, cfg Config, log *slog.Logger) (*App, error) {
	a := &App{
		cfg: cfg,
		env: environment.Parse(cfg.AppEnv),
		log: log,
	}

	policy, err := hostrouter.NewPolicy(cfg.Router)
	if err != nil {
		return nil, fmt.Errorf("edge: routing policy: %w", err)
	}
	a.policy = policy

	a.registry = metrics.NewRegistry()
	a.metrics = metrics.New(a.registry)

	a.gate, err = authgate.New(cfg.Auth,
		authgate.WithSkip(isTenantScoped),
		authgate.WithLogger(log),
		authgate.WithObserver(a.metrics.GateObserver()),
		authgate.WithObserver(gateLogFields),
	)
	if err != nil {
		return nil, fmt.Errorf("edge: auth gate: %w", err)
	}

	if cfg.UpstreamURL != "" {
		target, err := parseUpstream(cfg.UpstreamURL)
		if err != nil {
			return nil, err
		}
		a.upstream = newUpstream(target, log)
	}

	if err := a.openStores(ctx); err != nil {
		return nil, errors.Join(err, a.Close())
	}

	a.storefront = a.storefrontRouter()
	a.platform = a.platformRouter()
	return a, nil
}

func (a *App) openStores(ctx context.Context) error {
	if a.cfg.PG.Enabled() {
		pool, err := pg.Connect(ctx, a.cfg.PG)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		if a.cfg.PG.AutoMigrate {
			if err := pg.Migrate(ctx, pool, db.Migrations, a.cfg.PG, a.log); err != nil {
				return err
			}
		}
		a.stores = stores.NewPostgres(pool)
		a.checks = append(a.checks, httpserver.Check{Name: "pg", Fn: pg.Healthcheck(pool)})
	} else {
		seed, err := tenant.ParseSeed(a.cfg.SeedTenants)
		if err != nil {
			return fmt.Errorf("edge: seed stores: %w", err)
		}
		a.stores = tenant.NewMemoryProvider(seed...)
		a.log.Warn("DATABASE_URL not set, serving seeded stores only", slog.Int("stores", len(seed)))
	}

	if a.cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, client.Close)
		a.cache = stores.NewRedisCache(client, a.cfg.StoreCacheTTL, stores.WithCacheLogger(a.log))
		a.checks = append(a.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		a.cache = tenant.NewInMemoryCache(a.cfg.StoreCacheSize, a.cfg.StoreCacheTTL)
		a.closers = append(a.closers, a.cache.Close)
	}
	return nil
}

// Run serves the public listener, and the ops listener when OPS_ADDR is
// set, until ctx is cancelled or either listener fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	public := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	g.Go(func() error { return public.Run(ctx, a.Handler()) })

	if a.cfg.OpsAddr != "" {
		ops := httpserver.New(httpserver.WithAddr(a.cfg.OpsAddr), httpserver.WithLogger(a.log))
		g.Go(func() error { return ops.Run(ctx, a.OpsHandler()) })
	}
	return g.Wait()
}

// Close releases backing services in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for _, c := range slices.Backward(a.closers) {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
