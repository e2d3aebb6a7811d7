package normalize

import (
	"strings"
	"unicode/utf8"
)

const closingPhrase = "yours faithfully"

// CleanAddress strips the address block down to the postal lines. Everything up
// to and including the first mention of company is dropped, and anything from
// the closing salutation on is cut. It returns the trimmed multi-line form used
// for country lookup and the single-line form stored in the Address column.
func CleanAddress(address, company string) (string, string) {
	if company != "" {
		if _, end := indexFold(address, company); end != -1 {
			address = address[end:]
		}
	}
	if start, _ := indexFold(address, closingPhrase); start != -1 {
		address = address[:start]
	}

	var parts []string
	for _, ln := range strings.Split(address, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			parts = append(parts, ln)
		}
	}
	return strings.Trim(address, "\n"), strings.Join(parts, " ")
}

// indexFold reports the byte span in s of the first case-insensitive match of
// substr. Case variants may differ in encoded length, so the end offset is
// measured in s rather than derived from len(substr).
func indexFold(s, substr string) (start, end int) {
	if substr == "" {
		return 0, 0
	}
	for i := 0; i < len(s); {
		if n, ok := prefixFold(s[i:], substr); ok {
			return i, i + n
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, -1
}

func prefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, w := utf8.DecodeRuneInString(s[n:])
		if sr != pr && !strings.EqualFold(string(sr), string(pr)) {
			return 0, false
		}
		n += w
	}
	return n, true
}
