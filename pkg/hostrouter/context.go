package hostrouter

import (
	"context"
	"log/slog"
)

type (
	tenantKey       struct{}
	originalPathKey struct{}
)

// WithTenant records the tenant slug the router derived from the host.
func WithTenant(ctx context.Context, slug string) context.Context {
	return context.WithValue(ctx, tenantKey{}, slug)
}

// TenantFromContext returns the slug of a tenant-scoped request.
func TenantFromContext(ctx context.Context) (string, bool) {
	slug, ok := ctx.Value(tenantKey{}).(string)
	return slug, ok && slug != ""
}

func withOriginalPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, originalPathKey{}, path)
}

// OriginalPath returns the client-visible path of a rewritten request, or
// "" when the path was not rewritten.
func OriginalPath(ctx context.Context) string {
	path, _ := ctx.Value(originalPathKey{}).(string)
	return path
}

// LoggerExtractor adds the routed tenant to every log record of the request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if slug, ok := TenantFromContext(ctx); ok {
			return slog.String("tenant", slug), true
		}
		return slog.Attr{}, false
	}
}
