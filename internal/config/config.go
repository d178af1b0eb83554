// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-chat/internal/transport"
)

// Environment variables consulted by ApplyEnv
const (
	EnvAgentURL    = "AGENT_URL"
	EnvDatabaseURL = "DATABASE_URL"
)

// DefaultAgentURL is used when no agent URL is configured anywhere
const DefaultAgentURL = "ws://localhost:8000/ws"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Endpoints
	AgentURL    string `json:"agent_url,omitempty"`    // Websocket URL of the conversational agent
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the session journal

	// Transport timing, in seconds
	HandshakeTimeoutSeconds int `json:"handshake_timeout_seconds,omitempty"`
	WriteTimeoutSeconds     int `json:"write_timeout_seconds,omitempty"`
	PingIntervalSeconds     int `json:"ping_interval_seconds,omitempty"`
	PongWaitSeconds         int `json:"pong_wait_seconds,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print the resume after every change
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills empty endpoint fields from the environment.
func (c *Config) ApplyEnv() {
	if c.AgentURL == "" {
		c.AgentURL = os.Getenv(EnvAgentURL)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.AgentURL != "" {
		u, err := url.Parse(c.AgentURL)
		if err != nil {
			return fmt.Errorf("config error: invalid 'agent_url': %w", err)
		}
		if u.Scheme != "ws" && u.Scheme != "wss" {
			return fmt.Errorf("config error: 'agent_url' must use ws or wss, got %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("config error: 'agent_url' has no host")
		}
	}

	// Validate numeric ranges
	if c.HandshakeTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'handshake_timeout_seconds' must be non-negative")
	}
	if c.WriteTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'write_timeout_seconds' must be non-negative")
	}
	if c.PingIntervalSeconds < 0 {
		return fmt.Errorf("config error: 'ping_interval_seconds' must be non-negative")
	}
	if c.PongWaitSeconds < 0 {
		return fmt.Errorf("config error: 'pong_wait_seconds' must be non-negative")
	}
	if c.PingIntervalSeconds > 0 && c.PongWaitSeconds > 0 && c.PingIntervalSeconds >= c.PongWaitSeconds {
		return fmt.Errorf("config error: 'ping_interval_seconds' must be shorter than 'pong_wait_seconds'")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.AgentURL == "" {
		result.AgentURL = defaults.AgentURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.HandshakeTimeoutSeconds == 0 {
		result.HandshakeTimeoutSeconds = defaults.HandshakeTimeoutSeconds
	}
	if result.WriteTimeoutSeconds == 0 {
		result.WriteTimeoutSeconds = defaults.WriteTimeoutSeconds
	}
	if result.PingIntervalSeconds == 0 {
		result.PingIntervalSeconds = defaults.PingIntervalSeconds
	}
	if result.PongWaitSeconds == 0 {
		result.PongWaitSeconds = defaults.PongWaitSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// TransportSettings converts the timing fields into websocket settings.
// Zero fields keep the transport defaults.
func (c *Config) TransportSettings() *transport.Settings {
	settings := transport.DefaultSettings()
	if c.HandshakeTimeoutSeconds > 0 {
		settings.HandshakeTimeout = seconds(c.HandshakeTimeoutSeconds)
	}
	if c.WriteTimeoutSeconds > 0 {
		settings.WriteTimeout = seconds(c.WriteTimeoutSeconds)
	}
	if c.PingIntervalSeconds > 0 {
		settings.PingInterval = seconds(c.PingIntervalSeconds)
	}
	if c.PongWaitSeconds > 0 {
		settings.PongWait = seconds(c.PongWaitSeconds)
	}
	return settings
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
