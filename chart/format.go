package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultNumberLength is the FormatNumber length budget when none is given
const DefaultNumberLength = 8

var magnitudeSuffixes = []struct {
	threshold float64
	suffix    string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatNumber renders v compactly for axis labels and readouts
// Non-finite values render as "NaN". A fixed string longer than maxLength drops to
// zero decimals; the result may still exceed maxLength for very large values
func FormatNumber(v float64, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultNumberLength
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}

	abs := math.Abs(v)
	if abs > 0 && abs < 0.01 {
		return formatExponent(v)
	}
	for _, m := range magnitudeSuffixes {
		if abs >= m.threshold {
			return toFixed(v/m.threshold, 2) + m.suffix
		}
	}

	s := toFixed(v, 2)
	if len(s) > maxLength {
		s = toFixed(v, 0)
	}
	return s
}

// FormatPercentage renders a 0..1 ratio as a whole percentage, no clamping
// NaN and infinite ratios render as "NaN%"
func FormatPercentage(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN%"
	}
	return strconv.FormatInt(int64(math.Floor(v*100+0.5)), 10) + "%"
}

// XAxisLabel formats v into exactly width cells, left aligned
func XAxisLabel(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	return fitLabel(FormatNumber(v, width-1), width, false)
}

// YAxisLabel formats v into exactly width cells, right aligned
func YAxisLabel(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	return fitLabel(FormatNumber(v, width), width, true)
}

func fitLabel(s string, width int, alignRight bool) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	if alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// toFixed rounds half away from zero for zero decimals, matching display expectations for x.5
func toFixed(v float64, decimals int) string {
	if decimals == 0 {
		r := math.Round(v)
		if r == 0 {
			r = 0 // drop negative zero
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// formatExponent renders mantissa with two decimals and an unpadded signed exponent, e.g. 1.00e-3
func formatExponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', 2, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	if n >= 0 {
		return mantissa + "e+" + strconv.Itoa(n)
	}
	return mantissa + "e" + strconv.Itoa(n)
}
