package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/antiquecw/importgen/internal/config"
	"github.com/antiquecw/importgen/internal/logging"
	"github.com/antiquecw/importgen/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env overrides the environment during development; in
	// production there is no file and this is a no-op.
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting import file generator",
		"addr", cfg.Server.Addr(),
		"config", cfg.String(),
	)

	server := web.NewServer(cfg)

	done := make(chan struct{})
	go func() {
		defer close(done)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		slog.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("server stopped")
}
