package edge

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vendly/edge/pkg/clientip"
	"github.com/vendly/edge/pkg/environment"
	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/httpserver"
	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/metrics"
	"github.com/vendly/edge/pkg/requestid"
	"github.com/vendly/edge/pkg/respond"
	"github.com/vendly/edge/pkg/tenant"
)

// Handler is the public listener's handler.
//
//	requestid > client ip > environment > access log > otel span > latency histogram
//	  > host router > auth gate (platform only) > storefront | platform
//
// Without an ops listener the probes and metrics are served on platform
// hosts only; on a store host those paths belong to the storefront.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.cfg.Router.TrustForwardedHost))
	r.Use(environment.Middleware(a.env))

	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := hostrouter.TenantFromContext(r.Context()); ok {
			a.storefront.ServeHTTP(w, r)
			return
		}
		a.platform.ServeHTTP(w, r)
	})
	h = a.gate.Middleware()(h)
	h = hostrouter.Middleware(a.policy,
		hostrouter.WithLogger(a.log),
		hostrouter.WithObserver(a.metrics.RouterObserver()),
		hostrouter.WithObserver(routeLogFields),
	)(h)
	h = a.metrics.Instrument(h)
	h = otelhttp.NewHandler(h, "edge")
	h = accessLog(a.log)(h)

	r.Handle("/*", h)
	return r
}

// OpsHandler serves probes, metrics and cache purges on the ops listener.
func (a *App) OpsHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	a.mountProbes(r)
	r.Post("/internal/stores/{slug}/purge", a.purgeStore)
	return r
}

func (a *App) mountProbes(r chi.Router) {
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(a.log, a.cfg.ReadyTimeout, a.checks...))
	r.Handle("/metrics", metrics.Handler(a.registry))
}

func (a *App) storefrontRouter() http.Handler {
	r := chi.NewRouter()
	r.Route("/{tenant}", func(r chi.Router) {
		r.Use(tenant.Middleware(
			tenant.NewCompositeResolver(tenant.NewRouterResolver(), tenant.NewPathResolver(1)),
			a.stores,
			tenant.WithCache(a.cache),
			tenant.WithLogger(a.log),
		))
		r.Handle("/*", a.upstreamOr(http.HandlerFunc(storefrontPage)))
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.NotFound(w, "Store not found")
	})
	return r
}

func (a *App) platformRouter() http.Handler {
	fallback := a.upstreamOr(http.HandlerFunc(platformPage))
	if a.cfg.OpsAddr != "" {
		return fallback
	}
	r := chi.NewRouter()
	a.mountProbes(r)
	r.NotFound(fallback.ServeHTTP)
	r.MethodNotAllowed(fallback.ServeHTTP)
	return r
}

func (a *App) upstreamOr(fallback http.Handler) http.Handler {
	if a.upstream != nil {
		return a.upstream
	}
	return fallback
}

type storeView struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// storefrontPage stands in for the storefront renderer when no upstream
// is configured.
func storefrontPage(w http.ResponseWriter, r *http.Request) {
	t := tenant.MustFromContext(r.Context())
	_ = respond.JSON(w, struct {
		Store storeView `json:"store"`
		Path  string    `json:"path"`
	}{
		Store: storeView{ID: t.ID.String(), Slug: t.Slug, Name: t.Name, LogoURL: t.LogoURL},
		Path:  storePath(r.URL.Path, t.Slug),
	})
}

// storePath strips the /<slug> prefix a rewrite added. Paths the router
// left alone, such as static assets, come back unchanged.
func storePath(path, slug string) string {
	rest, ok := strings.CutPrefix(path, "/"+slug)
	switch {
	case !ok:
		return path
	case rest == "":
		return "/"
	case rest[0] == '/':
		return rest
	default:
		return path
	}
}

// platformPage stands in for the dashboard and API when no upstream is
// configured.
func platformPage(w http.ResponseWriter, r *http.Request) {
	_ = respond.JSON(w, map[string]string{"scope": "platform", "path": r.URL.Path})
}

func (a *App) purgeStore(w http.ResponseWriter, r *http.Request) {
	slug := tenant.NormalizeSlug(chi.URLParam(r, "slug"))
	if !tenant.ValidSlug(slug) {
		respond.JSONError(w, http.StatusBadRequest, "invalid store slug")
		return
	}
	a.cache.Delete(r.Context(), slug)
	a.log.InfoContext(r.Context(), "store cache purged", logger.Component("edge"), logger.Tenant(slug))
	w.WriteHeader(http.StatusNoContent)
}
