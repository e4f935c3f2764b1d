package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samir-kerkar/nba-pmi-engine/internal/config"
	"github.com/samir-kerkar/nba-pmi-engine/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_ENGINE_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nba-pmi-engine",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.Error(logger, "engine run failed", err)
		os.Exit(1)
	}
}
