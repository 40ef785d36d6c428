package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv_DefaultsWhenUnset(t *testing.T) {
	t.Setenv("COMPLYCUBE_BASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Port, cfg.Port)
	assert.Equal(t, def.ComplyCube.BaseURL, cfg.ComplyCube.BaseURL)
	assert.Equal(t, def.ComplyCube.Timeout, cfg.ComplyCube.Timeout)
	assert.Equal(t, def.RateLimit.Window, cfg.RateLimit.Window)
}

func TestNewConfigFromEnv_OverridesFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("COMPLYCUBE_API_KEY", "test_key")
	t.Setenv("COMPLYCUBE_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "7")
	t.Setenv("OTEL_OTLP_EXPORTER_ENDPOINT", "collector:4317")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, "test_key", cfg.ComplyCube.APIKey)
	assert.Equal(t, 3*time.Second, cfg.ComplyCube.Timeout)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 7, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "collector:4317", cfg.Otel.OtlpExporter.Endpoint)
}

func TestNewConfigFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := NewConfigFromEnv()

	assert.Error(t, err)
}

func TestNewConfigFromEnv_OptionsWin(t *testing.T) {
	t.Setenv("PORT", "9001")

	cfg, err := NewConfigFromEnv(WithPort(1234), WithComplyCubeBaseURL("http://localhost:1"))
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Port)
	assert.Equal(t, "http://localhost:1", cfg.ComplyCube.BaseURL)
}

func TestWithRateLimit(t *testing.T) {
	cfg := NewConfig(WithRateLimit(3, time.Second))

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
}

func TestNewConfigFromEnv_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,172.16.0.1")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.TrustedProxies)
	assert.Empty(t, DefaultConfig().TrustedProxies)
	assert.Equal(t, []string{"10.0.0.1"}, NewConfig(WithTrustedProxies("10.0.0.1")).TrustedProxies)
}
