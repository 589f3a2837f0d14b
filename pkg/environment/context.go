package environment

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context.
// Returns an empty Environment when none was attached.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
