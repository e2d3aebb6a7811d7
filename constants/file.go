package constants

import "strings"

// PDFExt is the only object extension the pipeline picks up from the blob store.
const PDFExt = "pdf"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFName reports whether an object name ends in ".pdf".
// The match is case-sensitive, so "SCAN.PDF" is not picked up.
func IsPDFName(name string) bool {
	return strings.HasSuffix(name, "."+PDFExt)
}
