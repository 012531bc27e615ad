package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv(EnvURL, "https://example.testrail.io")
	t.Setenv(EnvUsername, "user@example.com")
	t.Setenv(EnvAPIKey, "secret")
}

func TestFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogPretty, "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://example.testrail.io", cfg.BaseURL)
	assert.Equal(t, "user@example.com", cfg.Username)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.LogPretty)
}

func TestFromEnv_MissingSingleVariable(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantVar string
	}{
		{"missing url", EnvURL, EnvURL},
		{"missing username", EnvUsername, EnvUsername},
		{"missing api key", EnvAPIKey, EnvAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantVar)
		})
	}
}

func TestFromEnv_MissingAllVariables(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvAPIKey, "")

	_, err := FromEnv()
	require.Error(t, err)

	// The error names every missing variable, not just the first.
	assert.Contains(t, err.Error(), EnvURL)
	assert.Contains(t, err.Error(), EnvUsername)
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestFromEnv_WhitespaceIsMissing(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvAPIKey, "   ")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestFromEnv_Timeout(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvTimeout, "5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestFromEnv_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "soon"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(EnvTimeout, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), EnvTimeout)
		})
	}
}

func TestFromEnv_LogSettings(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogPretty, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}
