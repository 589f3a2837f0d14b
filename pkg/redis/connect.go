package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// DefaultRetryInterval is the first backoff step when Config leaves it unset.
const DefaultRetryInterval = time.Second

// Connect parses cfg.URL and pings the server with exponential backoff,
// bounded by cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyConnectionURL
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	client := redis.NewClient(opts)
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(interval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}
	return client, nil
}

// Healthcheck returns a readiness probe for client.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
