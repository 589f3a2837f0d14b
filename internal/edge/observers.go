package edge

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vendly/edge/pkg/authgate"
	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/logger"
)

func routeLogFields(ctx context.Context, d hostrouter.Decision) {
	addLogField(ctx, logger.Tenant(d.Tenant))
	addLogField(ctx, slog.String("route", d.Action.String()))
}

func gateLogFields(ctx context.Context, v authgate.Verdict) {
	addLogField(ctx, slog.String("gate", v.Outcome.String()))
}

func isTenantScoped(r *http.Request) bool {
	_, ok := hostrouter.TenantFromContext(r.Context())
	return ok
}
