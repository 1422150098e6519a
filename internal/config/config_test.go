package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitMax)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "0")

	_, err := Load()

	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "app",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "taskhub",
		DatabaseSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:secret@db:5433/taskhub?sslmode=disable", cfg.DSN())
}
