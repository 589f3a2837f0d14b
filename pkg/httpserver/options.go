package httpserver

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*config)

// Hook runs when the server starts listening or after it stops.
type Hook func(ctx context.Context, addr string)

// WithAddr sets the listen address used by Run. Panics on an empty addr.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr: empty addr")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadHeaderTimeout bounds how long a client may take to send headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(c *config) { c.readHeaderTimeout = positive("WithReadHeaderTimeout", d) }
}

// WithReadTimeout bounds reading a whole request.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = positive("WithReadTimeout", d) }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) { c.writeTimeout = positive("WithWriteTimeout", d) }
}

// WithIdleTimeout bounds keep-alive idle time.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *config) { c.idleTimeout = positive("WithIdleTimeout", d) }
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { c.shutdownTimeout = positive("WithShutdownTimeout", d) }
}

// WithLogger sets the logger for lifecycle events and http.Server errors.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers h to run once the listener is accepting.
func WithStartHook(h Hook) Option {
	return func(c *config) {
		if h != nil {
			c.startHooks = append(c.startHooks, h)
		}
	}
}

// WithStopHook registers h to run after the server has stopped.
func WithStopHook(h Hook) Option {
	return func(c *config) {
		if h != nil {
			c.stopHooks = append(c.stopHooks, h)
		}
	}
}

func positive(name string, d time.Duration) time.Duration {
	if d <= 0 {
		panic("httpserver: " + name + ": duration must be > 0")
	}
	return d
}
