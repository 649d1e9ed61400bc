package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fantasy-logo-studio/internal/config"
	"fantasy-logo-studio/internal/logging"
	"fantasy-logo-studio/internal/server"
)

const appVersion = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "fantasy-logo-studio",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
