package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// DefaultRetryInterval is the first backoff step when Config leaves it unset.
const DefaultRetryInterval = time.Second

// Connect opens a pool and pings it, retrying with exponential backoff.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyConnectionString
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	// Zero values keep the pgxpool defaults.
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = min(cfg.MinConns, poolCfg.MaxConns)
	}
	if cfg.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(interval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	return pool, nil
}

// Healthcheck returns a readiness probe for pool.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
