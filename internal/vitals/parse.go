// ABOUTME: Composite-value parsing for slash-separated readings.
// ABOUTME: Blood pressure "120/80" splits into systolic and diastolic.
package vitals

import (
	"strconv"
	"strings"
)

// ParseComposite splits a compound reading like "120/80" into its two
// integer components. Whitespace around either component is tolerated.
// Any malformation (missing slash, extra slash, non-integer part,
// empty input) reports ok=false; there is no partial success.
func ParseComposite(text string) (a, b int, ok bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	b, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
