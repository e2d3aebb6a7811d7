package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseph-ayodele/request-ocr/internal/blob"
	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/ingest"
	"github.com/joseph-ayodele/request-ocr/internal/server"
)

// register adds request PDFs to the documents table, either from the
// configured blob container or from a local directory.
func main() {
	dir := flag.String("dir", "", "register PDFs under this directory instead of the blob container")
	watch := flag.Bool("watch", false, "keep watching -dir for new PDFs")
	debounce := flag.Duration("debounce", 500*time.Millisecond, "coalesce bursts of file events")
	flag.Parse()

	cfg := common.LoadConfig()
	logger := common.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(store, logger)

	r := ingest.NewRegistrar(store, logger)
	switch {
	case *dir != "" && *watch:
		err = r.Watch(ctx, ingest.WatchConfig{Roots: []string{*dir}, InitialScan: true, Debounce: *debounce})
	case *dir != "":
		_, err = r.RegisterDirectory(ctx, *dir, true)
	default:
		var blobs blob.Store
		blobs, err = blob.Open(ctx, cfg.Storage.ConnectionString)
		if err != nil {
			break
		}
		defer blobs.Close()
		_, err = r.RegisterFromStore(ctx, blobs, cfg.Storage.Container)
	}
	if err != nil {
		logger.Error("registration failed", "error", err)
		os.Exit(1)
	}
}
