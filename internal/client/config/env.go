package config

import "os"

// Environment variable names recognized by parseEnv. A .env file loaded by
// the entry point (godotenv) feeds these too.
const (
	EnvServerAddr  = "LEAVEPORT_SERVER_ADDR"
	EnvSessionFile = "LEAVEPORT_SESSION_FILE"
	EnvLogLevel    = "LEAVEPORT_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the environment. Unset or empty
// variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvServerAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(EnvSessionFile); v != "" {
		cfg.SessionFilePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
