package ingest

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/joseph-ayodele/request-ocr/constants"
)

type WatchConfig struct {
	Roots       []string      // directories to watch (recursive)
	InitialScan bool          // register PDFs already present
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// Watch registers PDFs as they appear under cfg.Roots until ctx is done.
func (r *Registrar) Watch(ctx context.Context, cfg WatchConfig) error {
	if len(cfg.Roots) == 0 {
		return errors.New("no roots provided")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		r.Logger.Error("failed to create fsnotify watcher", "error", err)
		return err
	}
	defer func() { _ = w.Close() }()

	for _, root := range cfg.Roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			return nil
		})
		if err != nil {
			r.Logger.Error("failed to add root directory", "root", root, "error", err)
			return err
		}
		if cfg.InitialScan {
			if _, err := r.RegisterDirectory(ctx, root, true); err != nil {
				return err
			}
		}
	}
	r.Logger.Info("watching for request pdfs", "roots", cfg.Roots)

	pending := map[string]struct{}{}
	var flush <-chan time.Time
	var timer *time.Timer
	register := func() {
		for p := range pending {
			_, _ = r.Register(ctx, p)
			delete(pending, p)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Has(fsnotify.Create) {
				// new subdirectories are watched too; Add fails harmlessly for files
				_ = w.Add(e.Name)
			}
			if !constants.IsPDFName(e.Name) || !(e.Has(fsnotify.Create) || e.Has(fsnotify.Write) || e.Has(fsnotify.Rename)) {
				continue
			}
			pending[e.Name] = struct{}{}
			if cfg.Debounce <= 0 {
				register()
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(cfg.Debounce)
			flush = timer.C
		case <-flush:
			flush = nil
			register()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.Logger.Error("watcher error", "error", err)
		}
	}
}
