package analytics

import (
	"math"
	"strconv"
	"strings"
)

// formatDecimal renders v with one decimal place, the precision used for
// every rate stat shown on the dashboard.
func formatDecimal(v float64) string {
	// Drops negative zero so ties never render as "-0.0".
	if v == 0 || math.IsNaN(v) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// parseDecimal reads a decimal-formatted stat. The second return is false
// for empty or malformed input.
func parseDecimal(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
