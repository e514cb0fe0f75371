package chart

import "strings"

// SparklineLevels are the 8 glyphs used by sparklines, lowest first
var SparklineLevels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ComposeSparkline renders the most recent width values as one row
// The range comes from the data; a flat series renders at the lowest level
func ComposeSparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := 0.0, 0.0
	if len(values) > 0 {
		lo, hi = values[0], values[0]
		for _, v := range values {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * 7.99)
		idx = max(0, min(idx, 7))
		sb.WriteRune(SparklineLevels[idx])
	}
	for i := len(values); i < width; i++ {
		sb.WriteRune(SparklineLevels[0])
	}
	return sb.String()
}
