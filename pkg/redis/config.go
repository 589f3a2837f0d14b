package redis

import "time"

// Config is read from the environment. An empty URL disables Redis and the
// store cache stays in process.
type Config struct {
	URL            string        `env:"REDIS_URL"`
	RetryAttempts  uint64        `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a URL is configured.
func (c Config) Enabled() bool { return c.URL != "" }
