package main

import (
	"log/slog"
	"os"

	"github.com/Leonard-ssj/portfolio/internal/config"
	"github.com/Leonard-ssj/portfolio/internal/logging"
	"github.com/Leonard-ssj/portfolio/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.LogFormat, cfg.LogLevel)

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	slog.Info("Starting server", "addr", cfg.ServerAddr, "base_url", cfg.AppBaseURL)
	s.Start(cfg.ServerAddr)
}
