package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "data/db.json", cfg.DataFile)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiry)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Throttle.Limit)
	assert.Equal(t, time.Minute, cfg.Throttle.Window)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATA_FILE", "/tmp/eduscan.json")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOGIN_THROTTLE_LIMIT", "3")
	t.Setenv("LOGIN_THROTTLE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/eduscan.json", cfg.DataFile)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Throttle.Limit)
	assert.Equal(t, 30*time.Second, cfg.Throttle.Window)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
