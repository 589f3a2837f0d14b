// Package logger builds the edge's *slog.Logger.
//
// Records are JSON in production and text in development. A decorator
// copies request-scoped values (request id, environment, tenant) from the
// context onto every record, so handlers never thread them through by hand:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "vendly-edge"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), hostrouter.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "routed", logger.Action("rewrite"))
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vendly/edge/pkg/environment"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config is the env-driven part of the logger setup.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:""`
	Format string `env:"LOG_FORMAT" envDefault:""`
}

// Option configures logger creation.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics on anything but json or text:
// a misconfigured logger should stop the process at start-up.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the per-environment defaults: debug text logs in
// development, info JSON logs elsewhere. Service and env are added as static attrs.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		switch env {
		case environment.Production, environment.Staging:
			c.level = slog.LevelInfo
			c.format = FormatJSON
		default:
			c.level = slog.LevelDebug
			c.format = FormatText
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", string(env)))
	}
}

// WithConfig applies explicit LOG_LEVEL / LOG_FORMAT overrides.
// Empty fields keep whatever earlier options chose.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		if cfg.Level != "" {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
				panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
			}
			c.level = lvl
		}
		if cfg.Format != "" {
			WithFormat(Format(cfg.Format))(c)
		}
	}
}

// New creates a configured slog.Logger with context injection.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

// Discard returns a logger that drops everything. Packages use it as the
// default when no logger option is supplied.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
