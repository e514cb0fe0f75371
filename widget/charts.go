package widget

import (
	"slices"

	"github.com/lixenwraith/tuikit/chart"
	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/raster"
)

// chartColor resolves an explicit color or the theme palette entry for index
func chartColor(w *engine.World, c color.Packed, index int) color.Packed {
	if c.IsSet() {
		return c
	}
	return w.Theme.PaletteColor(index)
}

func cloneSeries(series [][]float64) [][]float64 {
	out := make([][]float64, len(series))
	for i, s := range series {
		out[i] = slices.Clone(s)
	}
	return out
}

// --- bar chart ---

type BarChartOptions struct {
	Bounds
	Labels      []string
	Series      [][]float64
	Mode        chart.BarMode      `validate:"lte=1"`
	Orientation raster.Orientation `validate:"lte=1"`
	Max         float64            `validate:"gte=0"`
	Color       color.Packed
}

type barChartState struct {
	view  chart.BarChartView
	color color.Packed
}

type BarChart struct {
	base
}

func NewBarChart(w *engine.World, opts BarChartOptions) (*BarChart, error) {
	if err := validateOptions(w, "barchart", opts); err != nil {
		return nil, err
	}
	c := &BarChart{base: newBase(w, "barchart", opts.Bounds, component.ZIndexWidget, nil)}
	c.render = c.compose
	attachState(&c.base, &barChartState{
		view: chart.BarChartView{
			Labels:      slices.Clone(opts.Labels),
			Series:      cloneSeries(opts.Series),
			Mode:        opts.Mode,
			Orientation: opts.Orientation,
			Max:         opts.Max,
		},
		color: opts.Color,
	})
	c.redraw()
	return c, nil
}

// SetSeries replaces every series; Series[s][c] is series s in category c
func (c *BarChart) SetSeries(series [][]float64) {
	mutate(&c.base, func(st *barChartState) { st.view.Series = cloneSeries(series) })
}

func (c *BarChart) SetLabels(labels []string) {
	mutate(&c.base, func(st *barChartState) { st.view.Labels = slices.Clone(labels) })
}

func (c *BarChart) SetMode(m chart.BarMode) {
	mutate(&c.base, func(st *barChartState) { st.view.Mode = m })
}

func (c *BarChart) SetOrientation(o raster.Orientation) {
	mutate(&c.base, func(st *barChartState) { st.view.Orientation = o })
}

// SetMax fixes the top of the scale, 0 scales to the data
func (c *BarChart) SetMax(v float64) {
	mutate(&c.base, func(st *barChartState) { st.view.Max = max(v, 0) })
}

func (c *BarChart) compose() {
	st, ok := sideState[barChartState](&c.base)
	if !ok {
		return
	}
	v := st.view
	v.Width, v.Height = c.Size()
	c.setForeground(chartColor(c.world, st.color, 0))
	c.world.SetContent(c.entity, chart.ComposeBarChart(v))
}

// --- line chart ---

type LineChartOptions struct {
	Bounds
	Series      [][]float64
	Min         float64
	Max         float64 `validate:"gtefield=Min"`
	YLabelWidth int
	Ticks       int `validate:"gte=0,lte=50"`
	MaxPoints   int `validate:"gte=0"` // per series, 0 = unbounded
	Color       color.Packed
}

type lineChartState struct {
	view      chart.LineChartView
	maxPoints int
	color     color.Packed
}

type LineChart struct {
	base
}

func NewLineChart(w *engine.World, opts LineChartOptions) (*LineChart, error) {
	if err := validateOptions(w, "linechart", opts); err != nil {
		return nil, err
	}
	c := &LineChart{base: newBase(w, "linechart", opts.Bounds, component.ZIndexWidget, nil)}
	c.render = c.compose
	st := &lineChartState{
		view: chart.LineChartView{
			Series:      cloneSeries(opts.Series),
			Min:         opts.Min,
			Max:         opts.Max,
			YLabelWidth: opts.YLabelWidth,
			Ticks:       opts.Ticks,
		},
		maxPoints: opts.MaxPoints,
		color:     opts.Color,
	}
	st.trim()
	attachState(&c.base, st)
	c.redraw()
	return c, nil
}

func (st *lineChartState) trim() {
	if st.maxPoints <= 0 {
		return
	}
	for i, s := range st.view.Series {
		if len(s) > st.maxPoints {
			st.view.Series[i] = slices.Clone(s[len(s)-st.maxPoints:])
		}
	}
}

func (c *LineChart) SetSeries(series [][]float64) {
	mutate(&c.base, func(st *lineChartState) {
		st.view.Series = cloneSeries(series)
		st.trim()
	})
}

// Append adds a point to series index, creating empty series up to it
func (c *LineChart) Append(series int, v float64) {
	if series < 0 {
		return
	}
	mutate(&c.base, func(st *lineChartState) {
		for len(st.view.Series) <= series {
			st.view.Series = append(st.view.Series, nil)
		}
		st.view.Series[series] = append(st.view.Series[series], v)
		st.trim()
	})
}

// SetRange fixes the y domain, both 0 derives it from the data
func (c *LineChart) SetRange(lo, hi float64) {
	mutate(&c.base, func(st *lineChartState) { st.view.Min, st.view.Max = lo, hi })
}

// Series returns a copy of the plotted data
func (c *LineChart) Series() [][]float64 {
	st, ok := sideState[lineChartState](&c.base)
	if !ok {
		return nil
	}
	return cloneSeries(st.view.Series)
}

func (c *LineChart) compose() {
	st, ok := sideState[lineChartState](&c.base)
	if !ok {
		return
	}
	v := st.view
	v.Width, v.Height = c.Size()
	c.setForeground(chartColor(c.world, st.color, 0))
	c.world.SetContent(c.entity, chart.ComposeLineChart(v))
}

// --- sparkline ---

type SparklineOptions struct {
	Bounds
	Values    []float64
	MaxPoints int `validate:"gte=0"` // 0 = keep as many as the width shows
	Color     color.Packed
}

type sparklineState struct {
	values    []float64
	maxPoints int
	color     color.Packed
}

// Sparkline is a one row trend of the newest values
type Sparkline struct {
	base
}

func NewSparkline(w *engine.World, opts SparklineOptions) (*Sparkline, error) {
	if err := validateOptions(w, "sparkline", opts); err != nil {
		return nil, err
	}
	s := &Sparkline{base: newBase(w, "sparkline", opts.Bounds, component.ZIndexWidget, nil)}
	s.render = s.compose
	attachState(&s.base, &sparklineState{maxPoints: opts.MaxPoints, color: opts.Color})
	s.SetValues(opts.Values)
	return s, nil
}

func (s *Sparkline) limit() int {
	st, ok := sideState[sparklineState](&s.base)
	if ok && st.maxPoints > 0 {
		return st.maxPoints
	}
	w, _ := s.Size()
	return w
}

func (s *Sparkline) SetValues(values []float64) {
	n := s.limit()
	mutate(&s.base, func(st *sparklineState) {
		if len(values) > n {
			values = values[len(values)-n:]
		}
		st.values = slices.Clone(values)
	})
}

// Push appends v, dropping the oldest value past the limit
func (s *Sparkline) Push(v float64) {
	n := s.limit()
	mutate(&s.base, func(st *sparklineState) {
		st.values = append(st.values, v)
		if len(st.values) > n {
			st.values = slices.Delete(st.values, 0, len(st.values)-n)
		}
	})
}

func (s *Sparkline) Values() []float64 {
	st, ok := sideState[sparklineState](&s.base)
	if !ok {
		return nil
	}
	return slices.Clone(st.values)
}

func (s *Sparkline) compose() {
	st, ok := sideState[sparklineState](&s.base)
	if !ok {
		return
	}
	w, h := s.Size()
	s.setForeground(chartColor(s.world, st.color, 0))
	s.world.SetContent(s.entity, block([]string{chart.ComposeSparkline(st.values, w)}, w, h))
}

// --- canvas ---

type CanvasOptions struct {
	Bounds
	Color color.Packed
}

type canvasState struct {
	canvas *raster.Canvas
	color  color.Packed
}

// Canvas is a free-form braille drawing surface of 2x4 dots per cell
type Canvas struct {
	base
}

func NewCanvas(w *engine.World, opts CanvasOptions) (*Canvas, error) {
	if err := validateOptions(w, "canvas", opts); err != nil {
		return nil, err
	}
	c := &Canvas{base: newBase(w, "canvas", opts.Bounds, component.ZIndexWidget, nil)}
	c.render = c.compose
	attachState(&c.base, &canvasState{
		canvas: raster.NewCanvas(opts.Width, opts.Height),
		color:  opts.Color,
	})
	c.redraw()
	return c, nil
}

// Draw runs fn against the dot bitmap and commits the result as content
func (c *Canvas) Draw(fn func(*raster.Canvas)) {
	mutate(&c.base, func(st *canvasState) { fn(st.canvas) })
}

func (c *Canvas) Clear() {
	mutate(&c.base, func(st *canvasState) { st.canvas.Clear() })
}

// compose reallocates the bitmap when the widget was resized, dropping its dots
func (c *Canvas) compose() {
	st, ok := sideState[canvasState](&c.base)
	if !ok {
		return
	}
	w, h := c.Size()
	if cols, rows := st.canvas.Cells(); cols != w || rows != h {
		st.canvas = raster.NewCanvas(w, h)
	}
	c.setForeground(chartColor(c.world, st.color, 0))
	c.world.SetContent(c.entity, st.canvas.String())
}
