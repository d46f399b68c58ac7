package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresPassword(t *testing.T) {
	t.Setenv("POSTGRES_PASSWORD", "")
	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("PLANNER_DISCOVERY_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Repositories.Postgres.Host)
	assert.Equal(t, "8091", cfg.ServerPort)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10*time.Minute, cfg.Planner.DiscoveryCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")
	t.Setenv("PLANNER_PARAMS_FILE", "/etc/tripcore/params.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, int32(30), cfg.Repositories.Postgres.MaxConns)
	assert.Equal(t, "/etc/tripcore/params.yaml", cfg.Planner.ParamsFile)
}
