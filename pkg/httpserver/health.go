package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/respond"
)

// Check is a named readiness dependency.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// ReadinessReport is the /readyz body.
type ReadinessReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LivenessHandler answers 200 ALIVE while the process can serve at all.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs every check with timeout and answers 200 when all
// pass, 503 otherwise. Failures are logged, never echoed to the client.
func ReadinessHandler(log *slog.Logger, timeout time.Duration, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report := ReadinessReport{Status: "ready", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for _, c := range checks {
			if err := c.Fn(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("httpserver"), slog.String("check", c.Name), logger.Error(err))
				report.Checks[c.Name] = "failing"
				report.Status = "not_ready"
				status = http.StatusServiceUnavailable
				continue
			}
			report.Checks[c.Name] = "ok"
		}
		_ = respond.JSONStatus(w, status, report)
	}
}
