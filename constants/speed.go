package constants

import "strings"

// Speed is the service type stored in the usage table.
type Speed string

const (
	SpeedExpress Speed = "Express"
	SpeedNormal  Speed = "Normal"
)

// speedKeywords maps the lowercase keywords found on request letters to a speed.
var speedKeywords = map[string]Speed{
	"express":  SpeedExpress,
	"normal":   SpeedNormal,
	"revision": SpeedNormal,
}

// speedDays maps the turnaround in working days to a speed.
var speedDays = map[int]Speed{
	3:  SpeedExpress,
	5:  SpeedExpress,
	10: SpeedNormal,
}

// SpeedForDays returns the speed for a numeric turnaround code.
func SpeedForDays(days int) (Speed, bool) {
	s, ok := speedDays[days]
	return s, ok
}

// SpeedForKeyword returns the speed for a keyword, case-insensitively.
func SpeedForKeyword(word string) (Speed, bool) {
	s, ok := speedKeywords[strings.ToLower(strings.TrimSpace(word))]
	return s, ok
}

func (s Speed) String() string { return string(s) }
