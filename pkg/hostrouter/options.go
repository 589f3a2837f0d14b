package hostrouter

import (
	"context"
	"log/slog"
)

// Observer is told about every decision, e.g. to count them.
type Observer func(ctx context.Context, d Decision)

type options struct {
	logger    *slog.Logger
	observers []Observer
}

// Option configures the middleware.
type Option func(*options)

// WithLogger logs each decision at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers fn to receive every decision.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}
