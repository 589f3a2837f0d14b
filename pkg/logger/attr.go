package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem that emitted the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Tenant records the tenant slug. Empty slugs are dropped.
func Tenant(slug string) slog.Attr {
	if slug == "" {
		return slog.Attr{}
	}
	return slog.String("tenant", slug)
}

// Host records the effective request host.
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// Path records a request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Action records the routing or gating outcome ("pass", "rewrite", ...).
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Duration records elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
