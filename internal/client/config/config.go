// Package config handles configuration for the client: defaults, JSON file
// overlay, environment overlay, and command-line flags, in that order of
// precedence (later wins).
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the leave portal client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API, including any
//     path prefix (e.g. "http://localhost:8080/api").
//   - SessionFilePath: where the signed-in session record is persisted.
//   - LogLevel: zap level name ("debug", "info", "warn", "error").
type Config struct {
	ServerEndpointAddr string
	SessionFilePath    string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080/api"
	c.SessionFilePath = defaultSessionFile()
	c.LogLevel = "info"
}

// defaultSessionFile places the session under the user's config directory,
// falling back to the working directory when none can be determined.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "leaveport", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
