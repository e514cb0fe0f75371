package main

import (
	"math/rand/v2"

	"github.com/lixenwraith/tuikit/chart"
	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/raster"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

func items(texts ...string) []selection.Item {
	out := make([]selection.Item, len(texts))
	for i, t := range texts {
		out[i] = selection.Item{Text: t, Value: i}
	}
	return out
}

type gaugeScene struct {
	cpu, mem *widget.Gauge
	braille  *widget.Checkbox
	level    float64
}

func newGaugeScene(w *engine.World, bell widget.Bell) (*gaugeScene, error) {
	thresholds := []chart.Threshold{
		{Value: 0, Color: color.RGB(80, 200, 80)},
		{Value: 0.6, Color: color.RGB(255, 180, 100)},
		{Value: 0.85, Color: color.RGB(230, 60, 60)},
	}
	s := &gaugeScene{level: 50}

	var err error
	if s.cpu, err = widget.NewGauge(w, widget.GaugeOptions{
		Bounds: widget.Bounds{Width: 40, Height: 1}, Value: s.level, Max: 100,
		Label: "cpu", Mode: chart.RenderBraille, Thresholds: thresholds,
	}); err != nil {
		return nil, err
	}
	if s.mem, err = widget.NewGauge(w, widget.GaugeOptions{
		Bounds: widget.Bounds{Y: 2, Width: 40, Height: 3}, Value: 100 - s.level, Max: 100,
		Label: "mem", Thresholds: thresholds,
	}); err != nil {
		return nil, err
	}
	if s.braille, err = widget.NewCheckbox(w, widget.CheckboxOptions{
		Bounds: widget.Bounds{Y: 6, Width: 24, Height: 1}, Label: "braille cpu gauge", Checked: true, Bell: bell,
	}); err != nil {
		return nil, err
	}
	s.braille.OnChange.Add(func(on bool) {
		if on {
			s.cpu.SetMode(chart.RenderBraille)
		} else {
			s.cpu.SetMode(chart.RenderBlock)
		}
	})
	return s, nil
}

func (s *gaugeScene) handle(key string) bool {
	switch key {
	case widget.KeyUp, widget.KeyRight, "k", "+":
		s.set(s.level + 5)
	case widget.KeyDown, widget.KeyLeft, "j", "-":
		s.set(s.level - 5)
	default:
		_, ok := s.braille.HandleKey(key)
		return ok
	}
	return true
}

func (s *gaugeScene) set(v float64) {
	s.level = min(max(v, 0), 100)
	s.cpu.SetValue(s.level)
	s.mem.SetValue(100 - s.level)
}

func buildGaugeScene(w *engine.World, bell widget.Bell) (func(string) bool, error) {
	s, err := newGaugeScene(w, bell)
	if err != nil {
		return nil, err
	}
	return s.handle, nil
}

// focusable is the key surface shared by the list scene's widgets
type focusable interface {
	HandleKey(key string) (widget.Action, bool)
}

type listScene struct {
	fruits *widget.SearchableList
	color  *widget.Select
	size   *widget.RadioGroup
	active int
}

func newListScene(w *engine.World, bell widget.Bell) (*listScene, error) {
	s := &listScene{}
	var err error
	if s.fruits, err = widget.NewSearchableList(w, widget.SearchableListOptions{
		Bounds: widget.Bounds{Width: 24, Height: 10},
		Items: items("Apple", "Apricot", "Banana", "Blackberry", "Blueberry", "Cherry",
			"Grape", "Kiwi", "Lemon", "Mango", "Orange", "Peach", "Pear", "Plum"),
		MultiSelect: true,
		Bell:        bell,
	}); err != nil {
		return nil, err
	}
	if s.color, err = widget.NewSelect(w, widget.SelectOptions{
		X: 26, Width: 14, Items: items("red", "green", "blue", "amber", "violet"),
		Placeholder: "color", Bell: bell,
	}); err != nil {
		return nil, err
	}
	if s.size, err = widget.NewRadioGroup(w, widget.RadioGroupOptions{
		Bounds:  widget.Bounds{X: 42, Width: 14, Height: 3},
		Options: []string{"small", "medium", "large"},
		Bell:    bell,
	}); err != nil {
		return nil, err
	}
	s.fruits.Focus()
	return s, nil
}

func (s *listScene) widgets() []focusable {
	return []focusable{s.fruits, s.color, s.size}
}

func (s *listScene) handle(key string) bool {
	busy := s.color.IsOpen() || s.fruits.State() == interactive.StateSearching
	if key == widget.KeyTab && !busy {
		s.cycle()
		return true
	}
	_, ok := s.widgets()[s.active].HandleKey(key)
	return ok
}

// cycle moves keyboard focus to the next widget
func (s *listScene) cycle() {
	switch s.active {
	case 0:
		s.fruits.Blur()
	case 2:
		s.size.Blur()
	}
	s.active = (s.active + 1) % len(s.widgets())
	switch s.active {
	case 0:
		s.fruits.Focus()
	case 2:
		s.size.Focus()
	}
}

func buildListScene(w *engine.World, bell widget.Bell) (func(string) bool, error) {
	s, err := newListScene(w, bell)
	if err != nil {
		return nil, err
	}
	return s.handle, nil
}

type chartScene struct {
	bars  *widget.BarChart
	line  *widget.LineChart
	spark *widget.Sparkline
	rng   *rand.Rand
	mode  chart.BarMode
}

func newChartScene(w *engine.World, seed uint64) (*chartScene, error) {
	s := &chartScene{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	var err error
	if s.bars, err = widget.NewBarChart(w, widget.BarChartOptions{
		Bounds:      widget.Bounds{Width: 30, Height: 8},
		Labels:      []string{"Q1", "Q2", "Q3", "Q4"},
		Series:      [][]float64{{3, 5, 4, 7}, {2, 3, 6, 5}},
		Orientation: raster.Vertical,
	}); err != nil {
		return nil, err
	}
	if s.line, err = widget.NewLineChart(w, widget.LineChartOptions{
		Bounds: widget.Bounds{X: 32, Width: 40, Height: 8},
		Max:    10, YLabelWidth: 4, MaxPoints: 64,
	}); err != nil {
		return nil, err
	}
	if s.spark, err = widget.NewSparkline(w, widget.SparklineOptions{
		Bounds: widget.Bounds{Y: 9, Width: 30, Height: 1},
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *chartScene) handle(key string) bool {
	switch key {
	case widget.KeySpace, widget.KeyEnter:
		v := s.rng.Float64() * 10
		s.spark.Push(v)
		s.line.Append(0, v)
		s.line.Append(1, 10-v)
	case "m":
		if s.mode == chart.BarGrouped {
			s.mode = chart.BarStacked
		} else {
			s.mode = chart.BarGrouped
		}
		s.bars.SetMode(s.mode)
	default:
		return false
	}
	return true
}

func buildChartScene(w *engine.World, _ widget.Bell) (func(string) bool, error) {
	s, err := newChartScene(w, rand.Uint64())
	if err != nil {
		return nil, err
	}
	return s.handle, nil
}
