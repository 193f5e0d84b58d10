package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skinforge/lootbox/internal/config"
	"github.com/skinforge/lootbox/internal/database"
	"github.com/skinforge/lootbox/internal/database/postgres"
	"github.com/skinforge/lootbox/internal/lootbox"
	"github.com/skinforge/lootbox/internal/server"
	"github.com/skinforge/lootbox/internal/skin"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	skinRepo := postgres.NewSkinRepository(pool)
	lootboxRepo := postgres.NewLootboxRepository(pool)

	lootboxService := lootbox.NewService(lootboxRepo, skinRepo)
	skinService := skin.NewService(skinRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, lootboxService, skinService)

	// Run the server in the background so we can listen for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Server stopped")
	}
}
