package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/normalize"
	"github.com/joseph-ayodele/request-ocr/internal/parse"
	"github.com/joseph-ayodele/request-ocr/internal/server"
)

// runocr OCRs one local PDF and prints the usage record it would produce.
func main() {
	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path/to/request.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read pdf", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tx := server.NewOCRExtractor(cfg.OCR, logger)
	start := time.Now()
	res, err := tx.ExtractText(ctx, data)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("text extraction OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	n, err := normalize.NewNormalizer(logger)
	if err != nil {
		logger.Error("build normalizer", "error", err)
		os.Exit(1)
	}
	name := filepath.Base(path)
	rec, err := n.Normalize(name, name, parse.Extract(res.Raw))
	if err != nil {
		logger.Error("normalize failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		logger.Error("encode", "error", err)
		os.Exit(1)
	}
}
