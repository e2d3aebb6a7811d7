package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/export"
	"github.com/joseph-ayodele/request-ocr/internal/server"
)

func main() {
	since := flag.String("since", "", "only rows created on or after this date (dd/mm/yyyy)")
	format := flag.String("format", "xlsx", "output format: xlsx|csv")
	out := flag.String("out", "", "output file (default usage.<format>)")
	flag.Parse()

	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	var from time.Time
	if *since != "" {
		t, err := time.Parse(constants.DateLayout, *since)
		if err != nil {
			logger.Error("invalid -since", "value", *since, "error", err)
			os.Exit(2)
		}
		from = t
	}
	if *format != "xlsx" && *format != "csv" {
		logger.Error("invalid -format", "value", *format)
		os.Exit(2)
	}
	if *out == "" {
		*out = fmt.Sprintf("usage.%s", *format)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(store, logger)

	svc := export.NewService(store, logger)
	var data []byte
	switch *format {
	case "csv":
		data, err = svc.ExportUsageCSV(ctx, from)
	default:
		data, err = svc.ExportUsageXLSX(ctx, from)
	}
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write export", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "format", *format, "bytes", len(data))
}
