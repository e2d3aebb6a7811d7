package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/request-ocr/internal/ocr"
)

type OCRAdapter struct {
	e      *ocr.Extractor
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{e: e, logger: logger}
}

func (a *OCRAdapter) ExtractText(ctx context.Context, pdf []byte) (TextExtractionResult, error) {
	r, err := a.e.ExtractPDF(ctx, pdf)
	if len(r.Warnings) > 0 {
		a.logger.Warn("ocr warnings", "pages", r.Pages, "warnings", r.Warnings)
	}
	return TextExtractionResult{
		Raw:      r.Raw,
		Text:     r.Text,
		Pages:    r.Pages,
		Method:   r.Method,
		Language: r.Language,
		Duration: r.Duration,
		Warnings: r.Warnings,
	}, err
}
