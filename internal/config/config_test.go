package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "/data/carmatch.db", cfg.DatabasePath)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, 10, cfg.TurnTimeoutSeconds)
	assert.NotEmpty(t, cfg.WelcomeMessage)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9001")
	t.Setenv("MAX_RESULTS", "3")
	t.Setenv("TURN_TIMEOUT_SECONDS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.AppPort)
	assert.Equal(t, 3, cfg.MaxResults)
	assert.Equal(t, 2, cfg.TurnTimeoutSeconds)
}
