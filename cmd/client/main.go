package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/anushishehara/leaveport/internal/client/cli"
	"github.com/anushishehara/leaveport/internal/client/config"
	"github.com/anushishehara/leaveport/internal/logging"
)

func main() {
	// A local .env feeds the environment layer of the config; absence is fine.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
