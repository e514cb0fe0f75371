package chart

import (
	"math"
	"strings"

	"github.com/lixenwraith/tuikit/raster"
	"github.com/lixenwraith/tuikit/vmath"
)

// DefaultYLabelWidth is the y-axis gutter when a line chart does not set one
const DefaultYLabelWidth = 6

// LineChartView is the renderable state of a line chart
type LineChartView struct {
	Series      [][]float64
	Min, Max    float64 // both 0 = nice domain from data
	YLabelWidth int     // 0 = DefaultYLabelWidth, negative = no axis
	Ticks       int
	Width       int
	Height      int
}

// Domain returns the y domain used for scaling
func (v LineChartView) Domain() vmath.Domain {
	if v.Min != 0 || v.Max != 0 {
		return vmath.Domain{Min: v.Min, Max: v.Max}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range v.Series {
		for _, x := range s {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			lo = min(lo, x)
			hi = max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		return vmath.Domain{Min: 0, Max: 1}
	}
	return vmath.NiceDomain(lo, hi, v.Ticks)
}

// ComposeLineChart plots each series on a braille canvas with a y-axis gutter
func ComposeLineChart(v LineChartView) string {
	if v.Width <= 0 || v.Height <= 0 {
		return ""
	}
	labelW := v.YLabelWidth
	if labelW == 0 {
		labelW = DefaultYLabelWidth
	}
	gutter := 0
	if labelW > 0 {
		gutter = labelW + 1
	}
	if gutter >= v.Width {
		gutter, labelW = 0, -1
	}

	dom := v.Domain()
	canvas := raster.NewCanvas(v.Width-gutter, v.Height)
	dotW, dotH := canvas.Size()

	for _, s := range v.Series {
		plotSeries(canvas, s, dom, dotW, dotH)
	}

	plot := canvas.Rows()
	if gutter == 0 {
		return strings.Join(plot, "\n")
	}

	// Each row shows the tick nearest to it
	labels := make([]string, v.Height)
	dist := make([]float64, v.Height)
	for _, tick := range vmath.GenerateTicks(dom.Min, dom.Max, v.Ticks) {
		pos := vmath.ScaleValue(tick, dom.Min, dom.Max, float64(v.Height-1), 0)
		row := int(math.Round(pos))
		if row < 0 || row >= v.Height {
			continue
		}
		d := math.Abs(pos - float64(row))
		if labels[row] == "" || d < dist[row] {
			labels[row] = YAxisLabel(tick, labelW)
			dist[row] = d
		}
	}

	rows := make([]string, v.Height)
	for y := range rows {
		label, axis := labels[y], "│"
		if label == "" {
			label = strings.Repeat(" ", labelW)
		} else {
			axis = "┤"
		}
		rows[y] = label + axis + plot[y]
	}
	return strings.Join(rows, "\n")
}

func plotSeries(c *raster.Canvas, s []float64, dom vmath.Domain, dotW, dotH int) {
	if len(s) == 0 || dotW == 0 || dotH == 0 {
		return
	}
	px := func(i int) int {
		if len(s) == 1 {
			return 0
		}
		return int(math.Round(vmath.ScaleValue(float64(i), 0, float64(len(s)-1), 0, float64(dotW-1))))
	}
	py := func(x float64) int {
		return int(math.Round(vmath.ScaleValue(x, dom.Min, dom.Max, float64(dotH-1), 0)))
	}

	prevOK := false
	var prevX, prevY int
	for i, x := range s {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			prevOK = false
			continue
		}
		cx, cy := px(i), py(x)
		if prevOK {
			c.DrawLine(prevX, prevY, cx, cy)
		} else {
			c.SetPixel(cx, cy)
		}
		prevX, prevY, prevOK = cx, cy, true
	}
}
