package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/content"
)

// StartBackground launches the workers that live as long as the server:
// the contact notifier and, when content is read from disk, the content
// watcher.
func (s *Server) StartBackground() error {
	if s.notifier != nil {
		if err := s.notifier.Start(s.ctx, s.Bus); err != nil {
			return err
		}
	}
	if dir := s.Cfg.ContentDir; dir != "" {
		go func() {
			if err := content.Watch(s.ctx, s.Content, dir); err != nil {
				slog.Error("content watcher stopped", "error", err)
			}
		}()
	}
	return nil
}

// Start runs the HTTP server.
func (s *Server) Start(addr string) {
	if err := s.StartBackground(); err != nil {
		slog.Error("Failed to start background workers", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
}

// Shutdown stops games, background workers and the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	err := s.E.Shutdown(ctx)
	if cerr := s.Bus.Close(); cerr != nil {
		slog.Warn("failed to close event bus", "error", cerr)
	}
	return err
}
