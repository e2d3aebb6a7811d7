package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// pdfToOCR renders every page and runs tesseract on each. raw is the
// unmodified tesseract output of all pages concatenated in page order. A page
// that cannot be recognized fails the whole document.
func (e *Extractor) pdfToOCR(ctx context.Context, path, workDir string) (raw string, pages int, warnings []string, err error) {
	prefix := filepath.Join(workDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("pdftoppm: %w", err)
	}

	// pdftoppm zero-pads page numbers, so a lexical sort is page order.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	for i, img := range matches {
		txt, errb, err := e.tesseractOCR(ctx, img)
		if err != nil {
			if ctx.Err() != nil {
				return "", i, nil, ctx.Err()
			}
			return "", i, []string{errb}, err
		}
		b.WriteString(txt)
	}
	return b.String(), len(matches), nil, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", string(errb), fmt.Errorf("tesseract %s: %w", filepath.Base(path), err)
	}
	return string(out), "", nil
}
