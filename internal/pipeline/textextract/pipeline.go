package textextract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/request-ocr/internal/blob"
	"github.com/joseph-ayodele/request-ocr/internal/extract"
)

type Pipeline struct {
	TextExtractor extract.TextExtractor
	Log           *slog.Logger
}

func NewPipeline(tx extract.TextExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{TextExtractor: tx, Log: log}
}

// Run downloads one PDF from the blob store and returns its OCR text.
func (p *Pipeline) Run(ctx context.Context, store blob.Store, container, objectName string) (extract.TextExtractionResult, error) {
	data, err := store.Get(ctx, container, objectName)
	if err != nil {
		return extract.TextExtractionResult{}, fmt.Errorf("download pdf: %w", err)
	}

	res, err := p.TextExtractor.ExtractText(ctx, data)
	if err != nil {
		return res, fmt.Errorf("ocr %s: %w", objectName, err)
	}
	p.Log.Debug("text extracted",
		"blob", objectName,
		"bytes", len(data),
		"pages", res.Pages,
		"chars", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
