package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: PDF bytes -> text.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Raw      string // unmodified OCR output
	Text     string // whitespace-normalized Raw
	Pages    int
	Method   string // "pdf-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}
