package edge

import (
	"time"

	"github.com/vendly/edge/pkg/authgate"
	"github.com/vendly/edge/pkg/config"
	"github.com/vendly/edge/pkg/hostrouter"
	"github.com/vendly/edge/pkg/httpserver"
	"github.com/vendly/edge/pkg/logger"
	"github.com/vendly/edge/pkg/pg"
	"github.com/vendly/edge/pkg/redis"
	"github.com/vendly/edge/pkg/telemetry"
)

// Config is everything the edge reads at start-up. Only the router and
// auth sections (plus the upstream URL) may come from the policy file.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development" yaml:"-"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"vendly-edge" yaml:"-"`
	PolicyFile  string `env:"EDGE_POLICY_FILE" yaml:"-"`
	// SeedTenants feeds the in-memory catalogue when DATABASE_URL is unset.
	SeedTenants string `env:"EDGE_SEED_TENANTS" yaml:"-"`
	// UpstreamURL is the application server routed requests are proxied
	// to. Empty serves the built-in handlers.
	UpstreamURL string `env:"EDGE_UPSTREAM_URL" yaml:"upstream_url"`
	// OpsAddr moves /healthz, /readyz, /metrics and the cache purge
	// endpoint to their own listener. Empty keeps the probes and metrics
	// on the main listener and disables purge.
	OpsAddr        string        `env:"OPS_ADDR" yaml:"-"`
	StoreCacheSize int           `env:"STORE_CACHE_SIZE" envDefault:"1000" yaml:"-"`
	StoreCacheTTL  time.Duration `env:"STORE_CACHE_TTL" envDefault:"5m" yaml:"-"`
	ReadyTimeout   time.Duration `env:"READY_TIMEOUT" envDefault:"2s" yaml:"-"`

	Log       logger.Config     `yaml:"-"`
	HTTP      httpserver.Config `yaml:"-"`
	Router    hostrouter.Config `yaml:"router"`
	Auth      authgate.Config   `yaml:"auth"`
	PG        pg.Config         `yaml:"-"`
	Redis     redis.Config      `yaml:"-"`
	Telemetry telemetry.Config  `yaml:"-"`
}

// LoadConfig reads the environment, then overlays EDGE_POLICY_FILE when set.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PolicyFile != "" {
		if err := config.LoadFile(cfg.PolicyFile, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
