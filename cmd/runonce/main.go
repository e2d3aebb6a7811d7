package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline"
	"github.com/joseph-ayodele/request-ocr/internal/server"
)

func main() {
	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Schedule.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Schedule.RunTimeout)
		defer cancel()
	}

	store, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(store, logger)

	runLock, closeLock, err := server.NewRunLock(ctx, cfg.Lock, logger)
	if err != nil {
		logger.Error("run lock", "error", err)
		os.Exit(1)
	}
	defer closeLock()

	p, err := server.NewProcessor(store, runLock, server.NewOCRExtractor(cfg.OCR, logger), logger)
	if err != nil {
		logger.Error("build processor", "error", err)
		os.Exit(1)
	}

	res, err := p.Run(ctx, pipeline.RunConfigFrom(cfg))
	if err != nil {
		if pipeline.IsSkipped(err) {
			logger.Info("previous run still in progress, skipping")
			return
		}
		logger.Error("error processing pdfs", "run_id", res.RunID, "error", err)
		os.Exit(1)
	}
	logger.Info("run finished",
		"run_id", res.RunID,
		"outcome", string(res.Outcome),
		"inserted", res.Inserted(),
		"missing", len(res.Missing),
		"failed", len(res.Failed),
		"duration_ms", res.Duration.Milliseconds(),
	)
}
