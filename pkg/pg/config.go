package pg

import "time"

// Config is read from the environment. An empty DSN disables the database
// and the edge falls back to its in-memory store catalogue.
type Config struct {
	DSN               string        `env:"DATABASE_URL"`
	MaxConns          int32         `env:"PG_MAX_CONNS" envDefault:"10"`
	MinConns          int32         `env:"PG_MIN_CONNS" envDefault:"2"`
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts uint64        `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"1s"`

	MigrationsDir   string `env:"PG_MIGRATIONS_DIR" envDefault:"migrations"`
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
	AutoMigrate     bool   `env:"PG_AUTO_MIGRATE" envDefault:"true"`
}

// Enabled reports whether a DSN is configured.
func (c Config) Enabled() bool { return c.DSN != "" }
