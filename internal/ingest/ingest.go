// Package ingest registers request PDFs in the documents table so the next
// run picks them up.
package ingest

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/blob"
	"github.com/joseph-ayodele/request-ocr/internal/repository"
)

// Stats summarizes one registration pass.
type Stats struct {
	Scanned    int
	Registered int
	Failed     int
}

// Registrar adds document names derived from PDF object names.
type Registrar struct {
	Docs   repository.DocumentRepository
	Logger *slog.Logger
}

func NewRegistrar(docs repository.DocumentRepository, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{Docs: docs, Logger: logger}
}

// DocumentName strips directories and the ".pdf" suffix. ok is false for
// non-PDF names.
func DocumentName(objectName string) (string, bool) {
	if !constants.IsPDFName(objectName) {
		return "", false
	}
	name := strings.TrimSuffix(path.Base(objectName), constants.PDFExt)
	if name == "" || name == "." {
		return "", false
	}
	return name, true
}

// Register adds one object. Already known names are left untouched.
func (r *Registrar) Register(ctx context.Context, objectName string) (bool, error) {
	name, ok := DocumentName(objectName)
	if !ok {
		return false, nil
	}
	if err := r.Docs.AddDocument(ctx, name); err != nil {
		r.Logger.Error("register document failed", "document", name, "object", objectName, "error", err)
		return false, err
	}
	r.Logger.Debug("document registered", "document", name, "object", objectName)
	return true, nil
}

// RegisterFromStore registers every PDF in container.
func (r *Registrar) RegisterFromStore(ctx context.Context, store blob.Store, container string) (Stats, error) {
	objects, err := store.List(ctx, container)
	if err != nil {
		r.Logger.Error("list container failed", "container", container, "error", err)
		return Stats{}, err
	}
	var stats Stats
	for _, o := range objects {
		stats.Scanned++
		ok, err := r.Register(ctx, o.Name)
		switch {
		case err != nil:
			stats.Failed++
		case ok:
			stats.Registered++
		}
	}
	r.Logger.Info("registration complete", "container", container,
		"scanned", stats.Scanned, "registered", stats.Registered, "failed", stats.Failed)
	return stats, nil
}
