// Package config loads runtime settings from INVESTCALC_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr        string        `env:"INVESTCALC_HTTP_ADDR"        envDefault:":8080"`
	ReadTimeout     time.Duration `env:"INVESTCALC_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"INVESTCALC_WRITE_TIMEOUT"    envDefault:"15s"`
	IdleTimeout     time.Duration `env:"INVESTCALC_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"INVESTCALC_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// RedisAddr selects the Redis result cache; empty keeps results in memory.
	RedisAddr string        `env:"INVESTCALC_REDIS_ADDR"`
	CacheTTL  time.Duration `env:"INVESTCALC_CACHE_TTL" envDefault:"10m"`

	// SQLitePath selects persistent history; empty keeps history in memory.
	SQLitePath string `env:"INVESTCALC_SQLITE_PATH"`

	RateLimitCapacity        int           `env:"INVESTCALC_RATE_LIMIT_CAPACITY"         envDefault:"5"`
	RateLimitRefill          time.Duration `env:"INVESTCALC_RATE_LIMIT_REFILL"           envDefault:"1m"`
	RateLimitIdleTTL         time.Duration `env:"INVESTCALC_RATE_LIMIT_IDLE_TTL"         envDefault:"1h"`
	RateLimitCleanupInterval time.Duration `env:"INVESTCALC_RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"30m"`

	LogLevel string `env:"INVESTCALC_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("rate limit capacity must be positive, got %d", c.RateLimitCapacity)
	}
	if c.RateLimitRefill <= 0 {
		return fmt.Errorf("rate limit refill must be positive, got %s", c.RateLimitRefill)
	}
	if c.RateLimitIdleTTL <= 0 || c.RateLimitCleanupInterval <= 0 {
		return fmt.Errorf("rate limit idle ttl and cleanup interval must be positive")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative, got %s", c.CacheTTL)
	}
	return nil
}
