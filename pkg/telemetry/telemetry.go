// Package telemetry configures OpenTelemetry tracing for the edge.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracerName is the instrumentation scope for spans the edge starts itself.
const TracerName = "github.com/vendly/edge"

// Config is read from the environment. Tracing is off unless Enabled.
type Config struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"vendly-edge"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
	Pretty      bool    `env:"OTEL_STDOUT_PRETTY" envDefault:"false"`
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// InitTracer installs a global tracer provider exporting to w (stdout when
// nil). When tracing is disabled it only installs the W3C propagator and
// returns a no-op shutdown.
func InitTracer(cfg Config, w io.Writer, log *slog.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if w == nil {
		w = os.Stdout
	}

	opts := []stdouttrace.Option{stdouttrace.WithWriter(w)}
	if cfg.Pretty {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled", slog.String("service", cfg.ServiceName), slog.Float64("sample_ratio", cfg.SampleRatio))
	return tp.Shutdown, nil
}
