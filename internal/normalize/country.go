package normalize

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
)

var (
	countryOnce    sync.Once
	countryMatcher *ahocorasick.Matcher
)

func matcher() *ahocorasick.Matcher {
	countryOnce.Do(func() {
		countryMatcher = ahocorasick.NewStringMatcher(countryNames)
	})
	return countryMatcher
}

// FindCountry returns the first known country named on the line that precedes
// the first "Telephone" line. Without a "Telephone" line only the last line is
// checked. Matching is a case-sensitive substring test; when several names hit,
// the one earliest in countryNames wins.
func FindCountry(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	for i, ln := range lines {
		if strings.Contains(ln, "Telephone") {
			if i == 0 {
				return ""
			}
			return countryIn(lines[i-1])
		}
	}
	return countryIn(lines[len(lines)-1])
}

func countryIn(line string) string {
	if line == "" {
		return ""
	}
	best := -1
	for _, idx := range matcher().Match([]byte(line)) {
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return ""
	}
	return countryNames[best]
}
