package httpserver

import "time"

// Config is the env-driven listener setup. Zero durations keep the
// Server defaults.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig builds a Server from cfg. Zero values keep the defaults;
// opts are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	base := make([]Option, 0, 6+len(opts))
	if cfg.Addr != "" {
		base = append(base, WithAddr(cfg.Addr))
	}
	if cfg.ReadHeaderTimeout > 0 {
		base = append(base, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.ReadTimeout > 0 {
		base = append(base, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		base = append(base, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		base = append(base, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		base = append(base, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return New(append(base, opts...)...)
}
