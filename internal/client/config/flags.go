package config

import (
	"flag"
	"os"

	"github.com/anushishehara/leaveport/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend REST API
//	-s string   path of the session file
//	-l string   log level
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// layers (-c/-config) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend REST API")
	fs.StringVar(&cfg.SessionFilePath, "s", cfg.SessionFilePath, "path of the session file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
