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

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 8, cfg.Verify.BatchConcurrency)
	assert.Equal(t, 500, cfg.Verify.MaxBatchSize)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LABELCHECK_SERVER_PORT", ":9090")
	t.Setenv("LABELCHECK_VERIFY_MAX_BATCH_SIZE", "50")
	t.Setenv("LABELCHECK_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Verify.MaxBatchSize)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_PaaSPortFallback(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}
