// Package main provides the standalone chat server for faqbot.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edudesk/faqbot/internal/config"
	"github.com/edudesk/faqbot/internal/server"
)

func main() {
	cfg := config.Load()
	logger, cleanup := config.NewLogger(cfg)
	defer cleanup()
	slog.SetDefault(logger)

	logger.Info("starting faqbot-server", "port", cfg.Port, "context_store", cfg.StoreBackend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		stop()
		os.Exit(1)
	}
}
