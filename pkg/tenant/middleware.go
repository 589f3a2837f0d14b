package tenant

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vendly/edge/pkg/logger"
)

// Middleware resolves the store for each request: cache, then provider,
// then the active check. Requests without a slug pass through untouched.
func Middleware(resolver Resolver, provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler:  DefaultErrorHandler,
		requireActive: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cache == nil {
		cfg.cache = NewInMemoryCache(DefaultCacheSize, DefaultCacheTTL)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			slug, err := resolver.Resolve(r)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "resolve store",
					logger.Component("tenant"), logger.Error(err))
				cfg.errorHandler(w, r, err)
				return
			}
			if slug == "" {
				next.ServeHTTP(w, r)
				return
			}

			slug = NormalizeSlug(slug)
			if !ValidSlug(slug) {
				cfg.errorHandler(w, r, fmt.Errorf("%w: %q", ErrInvalidSlug, slug))
				return
			}

			t, ok := cfg.cache.Get(r.Context(), slug)
			if !ok {
				t, err = provider.GetBySlug(r.Context(), slug)
				if err != nil {
					level := slog.LevelDebug
					if !isNotFound(err) {
						level = slog.LevelError
					}
					cfg.logger.Log(r.Context(), level, "load store",
						logger.Component("tenant"), logger.Tenant(slug), logger.Error(err))
					cfg.errorHandler(w, r, err)
					return
				}
				cfg.cache.Set(r.Context(), slug, t)
			}

			if cfg.requireActive && !t.Active {
				cfg.errorHandler(w, r, ErrInactiveTenant)
				return
			}

			trace.SpanFromContext(r.Context()).SetAttributes(
				attribute.String("vendly.store_id", t.ID.String()),
			)
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}

// RequireTenant rejects requests that reach it without a store.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = DefaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
