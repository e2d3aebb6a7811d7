package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/extract"
	"github.com/joseph-ayodele/request-ocr/internal/lock"
	"github.com/joseph-ayodele/request-ocr/internal/normalize"
	"github.com/joseph-ayodele/request-ocr/internal/ocr"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline/parsefields"
	"github.com/joseph-ayodele/request-ocr/internal/pipeline/textextract"
	repo "github.com/joseph-ayodele/request-ocr/internal/repository"
)

// NewOCRExtractor builds the tesseract-backed text extractor from config.
func NewOCRExtractor(cfg common.OCRConfig, logger *slog.Logger) extract.TextExtractor {
	x := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.Pdftoppm,
		Tesseract:     cfg.Tesseract,
		TesseractLang: cfg.TesseractLang,
		TessdataDir:   cfg.TessdataDir,
		DPI:           cfg.DPI,
		MaxPages:      cfg.MaxPages,
	}, logger)
	return extract.NewOCRAdapter(x, logger)
}

// NewRunLock returns a Redis lease when REDIS_ADDR is set and an in-process
// lock otherwise. The returned close func releases the Redis client.
func NewRunLock(ctx context.Context, cfg common.LockConfig, logger *slog.Logger) (lock.RunLock, func() error, error) {
	if cfg.RedisAddr == "" {
		logger.Info("run lock", "backend", "memory")
		return lock.NewMemoryLock(), func() error { return nil }, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, common.NewAppError(common.CodeConnectionFailure, "redis unreachable", fmt.Errorf("%w: %w", common.ErrConnection, err))
	}
	logger.Info("run lock", "backend", "redis", "key", cfg.Key, "ttl", cfg.TTL.String())
	return lock.NewRedisLock(client, cfg.Key, cfg.TTL), client.Close, nil
}

// NewProcessor wires the pipeline stages around store.
func NewProcessor(store repo.Store, l lock.RunLock, tx extract.TextExtractor, logger *slog.Logger) (*pipeline.Processor, error) {
	n, err := normalize.NewNormalizer(logger)
	if err != nil {
		return nil, fmt.Errorf("build normalizer: %w", err)
	}
	return pipeline.NewProcessor(
		store,
		l,
		textextract.NewPipeline(tx, logger),
		parsefields.NewPipeline(n, logger),
		logger,
	), nil
}
