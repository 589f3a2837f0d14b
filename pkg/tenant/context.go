package tenant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithTenant returns ctx carrying t.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the store resolved for this request.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(contextKey{}).(*Tenant)
	return t, ok && t != nil
}

// IDFromContext returns the id of the store in ctx.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	t, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return t.ID, true
}

// MustFromContext panics when no store is present. Only use it behind
// Middleware or RequireTenant.
func MustFromContext(ctx context.Context) *Tenant {
	t, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoTenantInContext)
	}
	return t
}

// LoggerExtractor adds store_id to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("store_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
