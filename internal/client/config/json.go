package config

import (
	"encoding/json"
	"os"

	"github.com/anushishehara/leaveport/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type jsonConfig struct {
	ServerEndpointAddr *string `json:"server_endpoint_addr"`
	SessionFilePath    *string `json:"session_file_path"`
	LogLevel           *string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no JSON layer. Read or unmarshal errors
// panic: a config file that was asked for but cannot be used is a startup
// fault, not something to limp past.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.SessionFilePath != nil {
		cfg.SessionFilePath = *jc.SessionFilePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
