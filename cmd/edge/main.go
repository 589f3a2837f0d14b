// Command edge is the Vendly edge gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vendly/edge/internal/edge"
	"github.com/vendly/edge/pkg/clientip"
	"github.com/vendly/edge/pkg/environment"
	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/requestid"
	"github.com/vendly/edge/pkg/telemetry"
	"github.com/vendly/edge/pkg/tenant"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "edge:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := edge.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.ServiceName),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			hostrouter.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	shutdownTracer, err := telemetry.InitTracer(cfg.Telemetry, nil, log)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error("tracer shutdown", logger.Error(err))
		}
	}()

	app, err := edge.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("close backing services", logger.Error(err))
		}
	}()

	log.Info("edge starting",
		slog.String("root_domain", cfg.Router.RootDomain),
		slog.String("addr", cfg.HTTP.Addr),
		slog.Bool("upstream", cfg.UpstreamURL != ""),
	)
	return app.Run(ctx)
}
