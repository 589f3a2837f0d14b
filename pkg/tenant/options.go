package tenant

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vendly/edge/pkg/respond"
)

// ErrorHandler renders resolution failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	cache         Cache
	errorHandler  ErrorHandler
	skipPaths     []string
	requireActive bool
	logger        *slog.Logger
}

// Option configures Middleware.
type Option func(*config)

// WithCache puts c in front of the provider. Defaults to an in-memory
// cache of DefaultCacheSize entries.
func WithCache(c Cache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.errorHandler = h
		}
	}
}

// WithSkipPaths exempts path prefixes from resolution.
func WithSkipPaths(paths ...string) Option {
	return func(cfg *config) { cfg.skipPaths = append(cfg.skipPaths, paths...) }
}

// WithRequireActive controls whether inactive stores are rejected. On by
// default.
func WithRequireActive(require bool) Option {
	return func(cfg *config) { cfg.requireActive = require }
}

// WithLogger sets the logger for lookup failures.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// DefaultErrorHandler answers unknown, inactive and malformed stores
// with the same 404 body.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTenantNotFound),
		errors.Is(err, ErrInactiveTenant),
		errors.Is(err, ErrInvalidSlug),
		errors.Is(err, ErrNoTenantInContext):
		respond.NotFound(w, "Store not found")
	default:
		respond.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
