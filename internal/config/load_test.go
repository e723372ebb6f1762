package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastberg/user-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Server.SeedDemoData)
	assert.Equal(t, config.DefaultAPIKey, cfg.Auth.APIKey)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("USERAPI_SERVER_PORT", "9090")
	t.Setenv("USERAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("USERAPI_AUTH_API_KEY", "another-secret")
	t.Setenv("USERAPI_RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("USERAPI_RATE_LIMIT_WINDOW", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "another-secret", cfg.Auth.APIKey)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "USERAPI_SERVER_LOG_LEVEL", value: "loud"},
		{name: "port out of range", key: "USERAPI_SERVER_PORT", value: "70000"},
		{name: "zero rate limit", key: "USERAPI_RATE_LIMIT_MAX_REQUESTS", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
