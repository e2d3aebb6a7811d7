package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxPages      int // 0 = no limit

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// ExtractionResult carries both forms of the recognized text. Raw is what
// tesseract printed and is what the field rules consume; Text has box rules
// stripped and whitespace collapsed for logs and previews.
type ExtractionResult struct {
	Raw      string
	Text     string
	Pages    int
	Method   string // "pdf-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg       Config
	runner    Runner
	pageCount func(rs io.ReadSeeker) (int, error)
	logger    *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, pageCount: pdfPageCount, logger: logger}
}

// WithRunner swaps the command runner, mainly for tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

func pdfPageCount(rs io.ReadSeeker) (int, error) {
	return api.PageCount(rs, nil)
}

// ExtractPDF rasterizes every page of a scanned PDF and returns the
// recognized text of all pages in page order.
func (e *Extractor) ExtractPDF(ctx context.Context, data []byte) (ExtractionResult, error) {
	start := time.Now()

	pages, err := e.pageCount(bytes.NewReader(data))
	if err != nil {
		e.logger.Error("invalid pdf", "bytes", len(data), "error", err)
		return ExtractionResult{}, fmt.Errorf("read pdf: %w", err)
	}
	e.logger.Debug("starting ocr extraction", "bytes", len(data), "pages", pages)

	tmpDir, err := os.MkdirTemp("", "rocr-*")
	if err != nil {
		return ExtractionResult{}, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	in := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return ExtractionResult{}, fmt.Errorf("write temp pdf: %w", err)
	}

	raw, rendered, warns, err := e.pdfToOCR(ctx, in, tmpDir)
	res := ExtractionResult{
		Raw:      raw,
		Text:     Normalize(reBoxNoise.ReplaceAllString(raw, "")),
		Pages:    rendered,
		Method:   "pdf-ocr",
		Language: e.cfg.TesseractLang,
		Duration: time.Since(start),
		Warnings: warns,
	}
	if err != nil {
		return res, err
	}
	if pages > 0 && rendered != pages && e.cfg.MaxPages == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("rendered %d of %d pages", rendered, pages))
	}
	return res, nil
}
