// Package config resolves server configuration from the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvURL      = "TESTRAIL_URL"
	EnvUsername = "TESTRAIL_USERNAME"
	EnvAPIKey   = "TESTRAIL_API_KEY"

	EnvTimeout   = "TESTRAIL_TIMEOUT"
	EnvLogLevel  = "TESTRAIL_MCP_LOG_LEVEL"
	EnvLogPretty = "TESTRAIL_MCP_LOG_PRETTY"
)

// DefaultTimeout is the fixed HTTP request timeout applied to every
// TestRail call when TESTRAIL_TIMEOUT is not set.
const DefaultTimeout = 30 * time.Second

// Config holds the resolved connection settings. It is created once at
// startup and never mutated afterwards.
type Config struct {
	// BaseURL is the root URL of the TestRail instance,
	// e.g. "https://example.testrail.io".
	BaseURL string
	// Username is the TestRail account email.
	Username string
	// APIKey is used as the basic-auth password.
	APIKey string

	// Timeout bounds each outbound HTTP request.
	Timeout time.Duration
	// LogLevel is the raw log level string (parsed by internal/logging).
	LogLevel string
	// LogPretty enables human-readable console logging.
	LogPretty bool
}

// FromEnv reads the configuration from the environment. All required
// variables are checked before returning so the error names every missing
// one, not just the first.
func FromEnv() (*Config, error) {
	cfg := &Config{
		BaseURL:   strings.TrimSpace(os.Getenv(EnvURL)),
		Username:  strings.TrimSpace(os.Getenv(EnvUsername)),
		APIKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Timeout:   DefaultTimeout,
		LogLevel:  os.Getenv(EnvLogLevel),
		LogPretty: os.Getenv(EnvLogPretty) == "true",
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, EnvURL)
	}
	if cfg.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if cfg.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid %s: %q (want a positive number of seconds)", EnvTimeout, v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
