package widget

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/chart"
	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/raster"
)

func newWorld() *engine.World {
	return engine.NewWorld(engine.Options{})
}

type countingBell struct{ rings int }

func (b *countingBell) Ring() { b.rings++ }

func TestGaugeRendersAndRecolors(t *testing.T) {
	w := newWorld()
	green, red := color.RGB(0, 255, 0), color.RGB(255, 0, 0)

	g, err := NewGauge(w, GaugeOptions{
		Bounds:     Bounds{Width: 10, Height: 1},
		Value:      0.5,
		Mode:       chart.RenderBraille,
		Thresholds: []chart.Threshold{{Value: 0, Color: green}, {Value: 0.8, Color: red}},
	})
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("⣿", 3)+"50%"+strings.Repeat("⠀", 4), w.Content(g.Entity()))
	assert.Equal(t, green, w.Style(g.Entity()).Fg)

	g.SetValue(0.9)
	assert.Equal(t, 0.9, g.Value())
	assert.Equal(t, red, w.Style(g.Entity()).Fg)

	g.SetRange(0, 200)
	g.SetValue(50)
	g.SetLabel("cpu")
	assert.InDelta(t, 0.25, g.Fraction(), 1e-9)
	// the status overlays the bar, its space shows the bar beneath
	assert.Contains(t, w.Content(g.Entity()), "cpu:")
	assert.Contains(t, w.Content(g.Entity()), "25%")
}

func TestGaugeResizeRecomposes(t *testing.T) {
	w := newWorld()
	g, err := NewGauge(w, GaugeOptions{Bounds: Bounds{Width: 4, Height: 1}, Value: 1})
	require.NoError(t, err)

	g.Resize(8, 3)
	rows := strings.Split(w.Content(g.Entity()), "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, "████████", rows[0])
	assert.Equal(t, "100%    ", rows[1])
}

func TestInvalidOptionsLeaveNoEntity(t *testing.T) {
	w := newWorld()

	_, err := NewGauge(w, GaugeOptions{Bounds: Bounds{Width: 0, Height: 1}})
	var ve *config.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bounds.width", ve.Field)

	_, err = NewGauge(w, GaugeOptions{Bounds: Bounds{Width: 5, Height: 1}, Min: 10, Max: 1})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "max", ve.Field)

	_, err = NewGauge(w, GaugeOptions{
		Bounds:     Bounds{Width: 5, Height: 1},
		Thresholds: []chart.Threshold{{Value: 1.5}},
	})
	require.Error(t, err)

	_, err = NewBarChart(w, BarChartOptions{Bounds: Bounds{Width: 5, Height: 1}, Mode: chart.BarMode(7)})
	require.Error(t, err)

	_, err = NewGauge(nil, GaugeOptions{Bounds: Bounds{Width: 5, Height: 1}})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "world", ve.Field)

	assert.Equal(t, 0, w.EntityCount())
}

func TestDestroyedHandleIsInert(t *testing.T) {
	w := newWorld()
	g, err := NewGauge(w, GaugeOptions{Bounds: Bounds{Width: 5, Height: 1}, Value: 0.3})
	require.NoError(t, err)

	require.NoError(t, g.Destroy())
	assert.False(t, g.Alive())
	assert.Equal(t, 0, w.EntityCount())
	assert.ErrorIs(t, g.Destroy(), engine.ErrStaleEntity)

	g.SetValue(1)
	g.Resize(9, 9)
	assert.Equal(t, 0.0, g.Value())
	assert.Equal(t, 0, engine.SideStore[*gaugeState](w).Count())
}

func TestBarChartMatchesCompositor(t *testing.T) {
	w := newWorld()
	c, err := NewBarChart(w, BarChartOptions{
		Bounds:      Bounds{Width: 8, Height: 3},
		Labels:      []string{"a", "b"},
		Series:      [][]float64{{1, 2}, {2, 4}},
		Orientation: raster.Vertical,
	})
	require.NoError(t, err)
	assert.Equal(t, "      █ \n▄ █ █ █ \na   b   ", w.Content(c.Entity()))
	assert.Equal(t, w.Theme.PaletteColor(0), w.Style(c.Entity()).Fg)

	c.SetMode(chart.BarStacked)
	c.Resize(4, 3)
	assert.Equal(t, "  █ \n█ █ \na b ", w.Content(c.Entity()))
}

func TestLineChartAppendKeepsWindow(t *testing.T) {
	w := newWorld()
	c, err := NewLineChart(w, LineChartOptions{
		Bounds:    Bounds{Width: 12, Height: 3},
		MaxPoints: 3,
		Color:     color.RGB(1, 2, 3),
	})
	require.NoError(t, err)

	for i := range 5 {
		c.Append(1, float64(i))
	}
	series := c.Series()
	require.Len(t, series, 2)
	assert.Empty(t, series[0])
	assert.Equal(t, []float64{2, 3, 4}, series[1])

	c.Append(-1, 9)
	assert.Len(t, c.Series(), 2)

	for _, row := range strings.Split(w.Content(c.Entity()), "\n") {
		assert.Equal(t, 12, utf8.RuneCountInString(row))
	}
	assert.Equal(t, color.RGB(1, 2, 3), w.Style(c.Entity()).Fg)
}

func TestSparklinePushDropsOldest(t *testing.T) {
	w := newWorld()
	s, err := NewSparkline(w, SparklineOptions{Bounds: Bounds{Width: 3, Height: 1}, Values: []float64{9, 1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Values())
	assert.Equal(t, "▁▄█", w.Content(s.Entity()))

	s.Push(0)
	assert.Equal(t, []float64{2, 3, 0}, s.Values())
	assert.Equal(t, "▆█▁", w.Content(s.Entity()))
}

func TestCanvasDraw(t *testing.T) {
	w := newWorld()
	c, err := NewCanvas(w, CanvasOptions{Bounds: Bounds{Width: 2, Height: 1}})
	require.NoError(t, err)
	assert.Equal(t, "⠀⠀", w.Content(c.Entity()))

	c.Draw(func(cv *raster.Canvas) {
		cv.SetPixel(0, 0)
		cv.SetPixel(3, 3)
	})
	assert.Equal(t, "⠁⢀", w.Content(c.Entity()))

	c.Clear()
	assert.Equal(t, "⠀⠀", w.Content(c.Entity()))

	c.Resize(1, 2)
	assert.Equal(t, "⠀\n⠀", w.Content(c.Entity()))
}

func TestRenderFlushesWidgets(t *testing.T) {
	w := newWorld()
	_, err := NewGauge(w, GaugeOptions{Bounds: Bounds{Width: 4, Height: 1}})
	require.NoError(t, err)
	s, err := NewSparkline(w, SparklineOptions{Bounds: Bounds{Y: 1, Width: 4, Height: 1}})
	require.NoError(t, err)

	var frames []engine.Frame
	sink := engine.SinkFunc(func(f engine.Frame) { frames = append(frames, f) })
	assert.Equal(t, 2, w.Flush(sink))
	assert.False(t, w.NeedsRedraw())

	s.SetValues([]float64{1, 5})
	frames = frames[:0]
	assert.Equal(t, 1, w.Flush(sink))
	require.Len(t, frames, 1)
	assert.Equal(t, s.Entity(), frames[0].Entity)
	assert.Equal(t, 1, frames[0].Y)
}
