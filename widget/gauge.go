package widget

import (
	"slices"

	"github.com/lixenwraith/tuikit/chart"
	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
)

// GaugeOptions configures a gauge; Min and Max both 0 means a 0..1 range
type GaugeOptions struct {
	Bounds
	Value      float64
	Min        float64
	Max        float64           `validate:"gtefield=Min"`
	Label      string            `validate:"max=64"`
	Mode       chart.RenderMode  `validate:"lte=1"`
	Thresholds []chart.Threshold `validate:"dive"`
	Color      color.Packed      // unset uses the theme foreground
}

type gaugeState struct {
	view       chart.GaugeView
	thresholds []chart.Threshold
	color      color.Packed
}

// Gauge shows a value as a filled bar with a percentage readout
type Gauge struct {
	base
}

func NewGauge(w *engine.World, opts GaugeOptions) (*Gauge, error) {
	if err := validateOptions(w, "gauge", opts); err != nil {
		return nil, err
	}
	if opts.Min == 0 && opts.Max == 0 {
		opts.Max = 1
	}

	g := &Gauge{base: newBase(w, "gauge", opts.Bounds, component.ZIndexWidget, nil)}
	g.render = g.compose
	attachState(&g.base, &gaugeState{
		view: chart.GaugeView{
			Value: opts.Value,
			Min:   opts.Min,
			Max:   opts.Max,
			Label: opts.Label,
			Mode:  opts.Mode,
		},
		thresholds: slices.Clone(opts.Thresholds),
		color:      opts.Color,
	})
	g.redraw()
	return g, nil
}

func (g *Gauge) SetValue(v float64) {
	mutate(&g.base, func(st *gaugeState) { st.view.Value = v })
}

// Value returns the raw value, 0 once destroyed
func (g *Gauge) Value() float64 {
	st, ok := sideState[gaugeState](&g.base)
	if !ok {
		return 0
	}
	return st.view.Value
}

// Fraction returns the clamped 0..1 fill
func (g *Gauge) Fraction() float64 {
	st, ok := sideState[gaugeState](&g.base)
	if !ok {
		return 0
	}
	return st.view.Fraction()
}

func (g *Gauge) SetRange(lo, hi float64) {
	mutate(&g.base, func(st *gaugeState) { st.view.Min, st.view.Max = lo, hi })
}

func (g *Gauge) SetLabel(label string) {
	mutate(&g.base, func(st *gaugeState) { st.view.Label = label })
}

func (g *Gauge) SetMode(m chart.RenderMode) {
	mutate(&g.base, func(st *gaugeState) { st.view.Mode = m })
}

func (g *Gauge) SetThresholds(ths []chart.Threshold) {
	mutate(&g.base, func(st *gaugeState) { st.thresholds = slices.Clone(ths) })
}

func (g *Gauge) compose() {
	st, ok := sideState[gaugeState](&g.base)
	if !ok {
		return
	}
	v := st.view
	v.Width, v.Height = g.Size()

	fg := st.color
	if !fg.IsSet() {
		fg = g.world.Theme.Foreground
	}
	if c, ok := chart.ThresholdColor(st.thresholds, v.Fraction()); ok {
		fg = c
	}
	g.setForeground(fg)
	g.world.SetContent(g.entity, chart.ComposeGauge(v))
}
