package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// RegisterDirectory walks root and registers every PDF file, skipping
// dot-files and dot-directories when skipHidden is set.
func (r *Registrar) RegisterDirectory(ctx context.Context, root string, skipHidden bool) (Stats, error) {
	if strings.TrimSpace(root) == "" {
		return Stats{}, errors.New("root path is required")
	}
	var stats Stats
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			stats.Failed++
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if skipHidden && path != root && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		ok, err := r.Register(ctx, path)
		switch {
		case err != nil:
			stats.Failed++
		case ok:
			stats.Registered++
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk: %w", err)
	}
	r.Logger.Info("directory registration complete", "root", root,
		"scanned", stats.Scanned, "registered", stats.Registered, "failed", stats.Failed)
	return stats, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
