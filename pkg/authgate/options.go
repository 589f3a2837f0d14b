package authgate

import (
	"context"
	"log/slog"
	"net/http"
)

// Verifier validates a session token. A non-nil error means the token
// does not count as a session.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(ctx context.Context, token string) error

func (f VerifierFunc) Verify(ctx context.Context, token string) error { return f(ctx, token) }

// SkipFunc exempts a request from gating altogether.
type SkipFunc func(r *http.Request) bool

// Observer is told about every verdict.
type Observer func(ctx context.Context, v Verdict)

// Option configures a Gate.
type Option func(*Gate)

// WithVerifier validates tokens at the gate instead of checking presence only.
func WithVerifier(v Verifier) Option {
	return func(g *Gate) { g.verifier = v }
}

// WithSkip registers a predicate; matching requests bypass the gate.
func WithSkip(fn SkipFunc) Option {
	return func(g *Gate) {
		if fn != nil {
			g.skips = append(g.skips, fn)
		}
	}
}

// WithLogger sets the logger for per-request debug lines. A nil logger
// is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithObserver registers fn to be told every verdict. Observers run
// synchronously, before the response is written.
func WithObserver(fn Observer) Option {
	return func(g *Gate) {
		if fn != nil {
			g.observers = append(g.observers, fn)
		}
	}
}
