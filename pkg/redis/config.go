package redis

import "time"

// Config holds redis connection settings. ConnectionURL is optional: when it
// is empty the gateway falls back to the in-memory rate-limit store.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // Format: "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // Connection attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // Delay between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // Overall budget for establishing the connection.
}

// Enabled reports whether a redis connection is configured.
func (c Config) Enabled() bool { return c.ConnectionURL != "" }
