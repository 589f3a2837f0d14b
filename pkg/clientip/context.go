package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

type ipKey struct{}

// WithIP stores ip in ctx.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

// FromContext returns the address stored by Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ipKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request and stores it
// in the context.
func Middleware(trustForwarded bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithIP(r.Context(), Resolve(r, trustForwarded))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor adds client_ip to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
