package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/request-ocr/constants"
	"github.com/joseph-ayodele/request-ocr/internal/common"
)

// ordinalSuffixes are removed as plain substrings, in this order, anywhere in
// the date, so month names containing them ("August") no longer parse.
var ordinalSuffixes = []string{"rd", "th", "st", "nd"}

const letterDateLayout = "2 January 2006"

// DateFormatError reports a raw date that is not "day month-name year".
type DateFormatError struct {
	Raw     string
	Cleaned string
	Err     error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("date %q (cleaned %q) does not match day month year: %v", e.Raw, e.Cleaned, e.Err)
}

func (e *DateFormatError) Unwrap() []error { return []error{common.ErrDateFormat, e.Err} }

// FormatDate converts a letter date such as "3rd January 2024" to dd/mm/yyyy.
func FormatDate(raw string) (string, error) {
	cleaned := raw
	for _, suffix := range ordinalSuffixes {
		cleaned = strings.ReplaceAll(cleaned, suffix, "")
	}
	// The month name is matched case-insensitively and any whitespace run
	// separates the parts.
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	t, err := time.Parse(letterDateLayout, cleaned)
	if err != nil {
		return "", &DateFormatError{Raw: raw, Cleaned: cleaned, Err: err}
	}
	return t.Format(constants.DateLayout), nil
}
