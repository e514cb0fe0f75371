package chart

import "github.com/lixenwraith/tuikit/color"

// Threshold switches a widget color once the value reaches Value
type Threshold struct {
	Value float64      `yaml:"value" validate:"gte=0,lte=1"`
	Color color.Packed `yaml:"color"`
}

// ThresholdColor returns the color of the highest threshold at or below v
// ok is false when no threshold qualifies and the caller's default applies
func ThresholdColor(thresholds []Threshold, v float64) (c color.Packed, ok bool) {
	best := 0.0
	for _, th := range thresholds {
		if th.Value <= v && (!ok || th.Value >= best) {
			best = th.Value
			c = th.Color
			ok = true
		}
	}
	return c, ok
}
