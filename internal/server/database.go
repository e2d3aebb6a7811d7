package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	repo "github.com/joseph-ayodele/request-ocr/internal/repository"
)

// ConnectDB opens the configured database and returns its Store.
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (repo.Store, error) {
	store, err := repo.Open(ctx, repo.ConfigFrom(cfg), logger)
	if err != nil {
		logger.Error("database connection failed", "driver", cfg.Driver, "error", err)
		return nil, err
	}
	return store, nil
}

// PingDB pings the database to ensure it's responsive
func PingDB(ctx context.Context, store repo.Store, logger *slog.Logger, timeout time.Duration) error {
	return repo.HealthCheck(ctx, store, timeout, logger)
}

// CloseDB closes the database connections gracefully
func CloseDB(store repo.Store, logger *slog.Logger) {
	logger.Info("closing database connections")
	if store != nil {
		store.Close()
	}
	logger.Info("database connections closed")
}
