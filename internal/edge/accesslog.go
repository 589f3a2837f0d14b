package edge

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vendly/edge/pkg/logger"
)

type logFieldsKey struct{}

type logFields struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// addLogField attaches an attribute to the request's access log line.
// No-op outside accessLog.
func addLogField(ctx context.Context, attr slog.Attr) {
	if f, ok := ctx.Value(logFieldsKey{}).(*logFields); ok {
		f.mu.Lock()
		f.attrs = append(f.attrs, attr)
		f.mu.Unlock()
	}
}

// accessLog writes one line per request once the response is complete.
// The path is the one the client sent, before any rewrite.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			fields := &logFields{}
			ctx := context.WithValue(r.Context(), logFieldsKey{}, fields)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				logger.Host(r.Host),
				logger.Path(r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			}
			fields.mu.Lock()
			attrs = append(attrs, fields.attrs...)
			fields.mu.Unlock()

			log.LogAttrs(ctx, level, "request", attrs...)
		})
	}
}
