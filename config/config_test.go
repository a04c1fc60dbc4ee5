package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitRefill)
	assert.Equal(t, time.Hour, cfg.RateLimitIdleTTL)
	assert.Equal(t, 30*time.Minute, cfg.RateLimitCleanupInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INVESTCALC_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("INVESTCALC_REDIS_ADDR", "redis:6379")
	t.Setenv("INVESTCALC_CACHE_TTL", "30s")
	t.Setenv("INVESTCALC_SQLITE_PATH", "/var/lib/investcalc/history.db")
	t.Setenv("INVESTCALC_RATE_LIMIT_CAPACITY", "20")
	t.Setenv("INVESTCALC_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "/var/lib/investcalc/history.db", cfg.SQLitePath)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unparsable duration", func(t *testing.T) {
		t.Setenv("INVESTCALC_RATE_LIMIT_REFILL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero idle ttl", func(t *testing.T) {
		t.Setenv("INVESTCALC_RATE_LIMIT_IDLE_TTL", "0s")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero capacity", func(t *testing.T) {
		t.Setenv("INVESTCALC_RATE_LIMIT_CAPACITY", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
