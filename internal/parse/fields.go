// Package parse pulls the business fields out of the OCR text of one request letter.
// Every rule works on unstructured text; an empty string means the field was not found.
package parse

import (
	"regexp"
	"strings"
)

// Markers printed on the request letters.
const (
	MarkerEHReference    = "EH reference number"
	MarkerTelephone      = "Telephone :"
	MarkerTelephoneWord  = "Telephone"
	MarkerCompanyRequest = "We would like to receive information about the company below"
	MarkerClosing        = "yours faithfully"
)

var (
	reEHReference = regexp.MustCompile(`\bEH reference number\s*:\s*(\d{10})\b`)
	reEuler       = regexp.MustCompile(`\bEuler N°\s*:\s*(\d{10})\b`)
	reDate        = regexp.MustCompile(`\b(\d{1,2}(?:st|nd|rd|th)?(?:\s+\w+)?(?:\s+\d{4})?)\b`)

	// TelephonePattern matches the "(area) number" layout. Extraction does not use it.
	TelephonePattern = regexp.MustCompile(`Telephone\s*:\s*\((\d{3})\) (\d{1,2} \d{3} \d{4})`)
)

// Fields is the raw extraction result for one document.
type Fields struct {
	// SpeedToken is the line after the "EH reference number" marker. It usually
	// carries the turnaround code (3, 5, 10) or a keyword, not a number.
	SpeedToken string
	// EHReference is a 10-digit number printed on the marker line itself.
	EHReference string
	// EulerNumber is the client reference stored as EnteredRefNo.
	EulerNumber        string
	Telephone          string
	CompanyName        string
	Address            string
	RawDate            string
	RegistrationNumber string
	Report             string
}

// Extract applies every field rule to text.
func Extract(text string) Fields {
	lines := nonBlankLines(text)

	f := Fields{
		SpeedToken:  strings.TrimSpace(lineAfter(lines, MarkerEHReference, 1)),
		EHReference: firstGroup(reEHReference, text),
		EulerNumber: firstGroup(reEuler, text),
		Telephone:   Telephone(lines),
		CompanyName: strings.TrimSpace(lineAfter(lines, MarkerCompanyRequest, 2)),
		Address:     Address(text),
		RawDate:     strings.TrimSpace(firstGroup(reDate, text)),
	}
	f.Report = Report(text, f.Telephone, f.Address)
	f.RegistrationNumber = RegistrationNumber(f.Address)
	return f
}

// nonBlankLines splits the trimmed text on newlines and drops whitespace-only lines.
// Lines are kept untrimmed.
func nonBlankLines(text string) []string {
	raw := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, len(raw))
	for _, ln := range raw {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}

// lineAfter returns the line offset positions below the first line containing marker.
func lineAfter(lines []string, marker string, offset int) string {
	for i, ln := range lines {
		if strings.Contains(ln, marker) {
			if i+offset < len(lines) {
				return lines[i+offset]
			}
			return ""
		}
	}
	return ""
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Telephone returns whatever follows the first colon on the first "Telephone :" line.
func Telephone(lines []string) string {
	for _, ln := range lines {
		if !strings.Contains(ln, MarkerTelephone) {
			continue
		}
		if i := strings.Index(ln, ":"); i != -1 {
			return strings.TrimSpace(ln[i+1:])
		}
	}
	return ""
}

// ValidTelephone reports whether line has the "(area) number" layout.
func ValidTelephone(line string) bool {
	return TelephonePattern.MatchString(line)
}

// Address returns the block between the company-request marker (with its colon)
// and the first "Telephone" after it, or the end of the text.
func Address(text string) string {
	marker := MarkerCompanyRequest + ":"
	start := strings.Index(text, marker)
	if start == -1 {
		return ""
	}
	rest := text[start+len(marker):]
	if end := strings.Index(rest, MarkerTelephoneWord); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// Report returns the free text between the telephone number and the closing
// salutation. The address end is the starting point when no telephone was found.
func Report(text, telephone, address string) string {
	var from int
	switch {
	case telephone != "":
		i := indexFold(text, telephone, 0)
		if i == -1 {
			return ""
		}
		from = i + len(telephone)
	case address != "":
		i := strings.Index(text, address)
		if i == -1 {
			return ""
		}
		from = i + len(address)
	default:
		return ""
	}

	if indexFold(text, MarkerClosing, 0) == -1 {
		return strings.TrimSpace(text[from:])
	}
	end := indexFold(text, MarkerClosing, from)
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(text[from:end])
}

// indexFold is a case-insensitive strings.Index starting at byte offset from.
func indexFold(s, substr string, from int) int {
	n := len(substr)
	for i := from; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
