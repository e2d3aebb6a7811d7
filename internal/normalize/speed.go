package normalize

import (
	"strconv"
	"strings"

	"github.com/joseph-ayodele/request-ocr/constants"
)

// ClassifySpeed maps the raw speed token to a service type. A clean integer
// is looked up as a turnaround code first; only non-integers fall back to
// keyword matching. Unknown values return false.
func ClassifySpeed(token string) (constants.Speed, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	if days, err := strconv.Atoi(token); err == nil {
		return constants.SpeedForDays(days)
	}
	return constants.SpeedForKeyword(token)
}
