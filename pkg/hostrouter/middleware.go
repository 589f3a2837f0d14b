package hostrouter

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/respond"
)

// Middleware applies p to every request.
//
// Rewrites replace the URL path on a copy of the request, so the handler
// chain resolves /<tenant>/... while the response still goes to the URL
// the client asked for. Query strings are left alone.
func Middleware(p *Policy, opts ...Option) func(http.Handler) http.Handler {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := EffectiveHost(r, p.trustForwarded)
			d := p.Decide(host, r.URL.Path)

			trace.SpanFromContext(r.Context()).SetAttributes(
				attribute.String("vendly.route_scope", d.Scope.String()),
				attribute.String("vendly.route_action", d.Action.String()),
				attribute.String("vendly.tenant", d.Tenant),
			)
			for _, fn := range o.observers {
				fn(r.Context(), d)
			}
			o.logger.LogAttrs(r.Context(), slog.LevelDebug, "host routed",
				logger.Component("hostrouter"),
				logger.Host(host),
				logger.Path(r.URL.Path),
				logger.Tenant(d.Tenant),
				logger.Action(d.Action.String()),
			)

			switch d.Action {
			case ActionRedirect:
				http.Redirect(w, r, d.Location, p.redirectCode)
				return
			case ActionForbid:
				respond.Forbidden(w)
				return
			}

			if d.Scope == ScopeTenant {
				ctx := WithTenant(r.Context(), d.Tenant)
				if d.Action == ActionRewrite {
					ctx = withOriginalPath(ctx, r.URL.Path)
				}
				r = r.WithContext(ctx)
			}
			if d.Action == ActionRewrite {
				r = rewrite(r, d.Tenant, d.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rewrite returns r with its routing path replaced. The URL is copied
// because WithContext shares it with the original request.
func rewrite(r *http.Request, tenant, path string) *http.Request {
	u := *r.URL
	u.Path = path
	if u.RawPath != "" {
		u.RawPath = scopePath(tenant, u.RawPath)
	}
	r.URL = &u
	return r
}
