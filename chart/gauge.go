// Package chart turns numeric widget state into fixed-size text buffers
//
// Every compose function returns rows joined by '\n', each row exactly the
// requested width in runes. Sinks receive the string verbatim.
package chart

import (
	"strings"

	"github.com/lixenwraith/tuikit/raster"
	"github.com/lixenwraith/tuikit/vmath"
)

// RenderMode selects the glyph family of a bar
type RenderMode uint8

const (
	RenderBlock RenderMode = iota
	RenderBraille
)

func (m RenderMode) String() string {
	switch m {
	case RenderBlock:
		return "block"
	case RenderBraille:
		return "braille"
	default:
		return "unknown"
	}
}

// ParseRenderMode maps a config string to a mode
func ParseRenderMode(s string) (RenderMode, bool) {
	switch s {
	case "", "block":
		return RenderBlock, true
	case "braille":
		return RenderBraille, true
	default:
		return RenderBlock, false
	}
}

// Bar renders a horizontal bar of width cells for a 0..1 fraction
// Unknown modes render as blocks
func Bar(mode RenderMode, fraction float64, width int) string {
	if mode == RenderBraille {
		return raster.RenderBrailleBar(fraction, width)
	}
	return raster.HorizontalBlockBar(fraction, width)
}

// GaugeView is the renderable state of a gauge
type GaugeView struct {
	Value    float64 // raw value in [Min,Max]
	Min, Max float64
	Label    string
	Mode     RenderMode
	Width    int
	Height   int
}

// Fraction returns the 0..1 fill of the gauge, a degenerate range reads as half
func (g GaugeView) Fraction() float64 {
	return vmath.Clamp01(vmath.ScaleValue(g.Value, g.Min, g.Max, 0, 1))
}

// StatusText returns the percentage readout, prefixed with the label when set
func (g GaugeView) StatusText() string {
	pct := FormatPercentage(g.Fraction())
	if g.Label == "" {
		return pct
	}
	return g.Label + ": " + pct
}

// ComposeGauge renders a gauge
// Height 1 overlays the centered status on the bar; taller gauges put the status
// on the second row and fill remaining rows with spaces
func ComposeGauge(g GaugeView) string {
	if g.Width <= 0 || g.Height <= 0 {
		return ""
	}
	bar := Bar(g.Mode, g.Fraction(), g.Width)
	status := g.StatusText()

	if g.Height == 1 {
		return Overlay(bar, status, g.Width)
	}

	rows := make([]string, g.Height)
	rows[0] = bar
	rows[1] = PadRow(status, g.Width)
	blank := strings.Repeat(" ", g.Width)
	for i := 2; i < g.Height; i++ {
		rows[i] = blank
	}
	return strings.Join(rows, "\n")
}

// Overlay centers text over base; non-space text runes replace base runes
func Overlay(base, text string, width int) string {
	if width <= 0 {
		return ""
	}
	baseRunes := []rune(PadRow(base, width))
	textRunes := []rune(text)
	padding := (width - len(textRunes)) / 2
	if width < len(textRunes) {
		// floor division for a negative numerator
		padding = -((len(textRunes) - width + 1) / 2)
	}

	out := make([]rune, width)
	for i := 0; i < width; i++ {
		j := i - padding
		if j >= 0 && j < len(textRunes) && textRunes[j] != ' ' {
			out[i] = textRunes[j]
		} else {
			out[i] = baseRunes[i]
		}
	}
	return string(out)
}

// PadRow truncates or space-pads s to exactly width runes
func PadRow(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
