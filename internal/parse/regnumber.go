package parse

import (
	"strings"
	"unicode"
)

// RegistrationNumber derives the company registration number from the first
// address line. A line that carries no digits and no code-like token is taken
// to be the company name and yields "".
func RegistrationNumber(address string) string {
	first, _, _ := strings.Cut(address, "\n")
	if !hasNumberOrCode(strings.Fields(first)) {
		return ""
	}
	_, after, found := strings.Cut(strings.TrimSpace(first), ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

func hasNumberOrCode(tokens []string) bool {
	for _, tok := range tokens {
		if strings.IndexFunc(tok, unicode.IsDigit) != -1 {
			return true
		}
	}
	for _, tok := range tokens {
		if isCodeToken(tok) {
			return true
		}
	}
	return false
}

// isCodeToken reports whether tok is made of alphanumerics and "-:/ " only,
// with at least one letter and one separator, e.g. "ACME-LTD:" or "A/B".
func isCodeToken(tok string) bool {
	var letter, separator bool
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r) || unicode.IsNumber(r):
		case strings.ContainsRune("-: /", r):
			separator = true
		default:
			return false
		}
	}
	return letter && separator
}
