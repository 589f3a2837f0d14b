package edge

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/respond"
	"github.com/vendly/edge/pkg/tenant"
)

// Headers the edge sets on proxied requests. Inbound copies are dropped so
// clients cannot spoof them.
const (
	HeaderTenant       = "X-Vendly-Tenant"
	HeaderStoreID      = "X-Vendly-Store-Id"
	HeaderOriginalPath = "X-Vendly-Original-Path"
)

func parseUpstream(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("edge: upstream url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("edge: upstream url %q must be absolute http(s)", raw)
	}
	return u, nil
}

// newUpstream forwards routed requests to the application server. The
// upstream sees the rewritten path, the client's Host and the routing
// headers above.
func newUpstream(target *url.URL, log *slog.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Host = pr.In.Host

			h := pr.Out.Header
			h.Del(HeaderTenant)
			h.Del(HeaderStoreID)
			h.Del(HeaderOriginalPath)

			ctx := pr.In.Context()
			if slug, ok := hostrouter.TenantFromContext(ctx); ok {
				h.Set(HeaderTenant, slug)
			}
			if t, ok := tenant.FromContext(ctx); ok {
				h.Set(HeaderStoreID, t.ID.String())
			}
			if p := hostrouter.OriginalPath(ctx); p != "" {
				h.Set(HeaderOriginalPath, p)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "upstream request failed",
				logger.Component("upstream"), logger.Path(r.URL.Path), logger.Error(err))
			respond.JSONError(w, http.StatusBadGateway, "Bad Gateway")
		},
	}
}
