package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/raster"
)

// BarMode selects how multiple series share a category
type BarMode uint8

const (
	BarGrouped BarMode = iota // one bar per series side by side
	BarStacked                // one bar per category, series summed
)

// ParseBarMode maps a config string to a mode
func ParseBarMode(s string) (BarMode, bool) {
	switch s {
	case "", "grouped":
		return BarGrouped, true
	case "stacked":
		return BarStacked, true
	default:
		return BarGrouped, false
	}
}

// ParseOrientation maps a config string to an orientation
func ParseOrientation(s string) (raster.Orientation, bool) {
	switch s {
	case "", "vertical":
		return raster.Vertical, true
	case "horizontal":
		return raster.Horizontal, true
	default:
		return raster.Vertical, false
	}
}

// BarChartView is the renderable state of a bar chart
// Series[s][c] is the value of series s in category c; negative values draw as zero
type BarChartView struct {
	Labels      []string
	Series      [][]float64
	Mode        BarMode
	Orientation raster.Orientation
	Max         float64 // 0 = auto from data
	Width       int
	Height      int
}

// categories returns the number of categories covered by labels or any series
func (v BarChartView) categories() int {
	n := len(v.Labels)
	for _, s := range v.Series {
		n = max(n, len(s))
	}
	return n
}

func (v BarChartView) value(series, category int) float64 {
	if series >= len(v.Series) || category >= len(v.Series[series]) {
		return 0
	}
	return max(v.Series[series][category], 0)
}

// bars flattens the chart into the drawn bars in order
func (v BarChartView) bars() (values []float64, labels []string) {
	cats := v.categories()
	for c := 0; c < cats; c++ {
		label := ""
		if c < len(v.Labels) {
			label = v.Labels[c]
		}
		switch v.Mode {
		case BarStacked:
			sum := 0.0
			for s := range v.Series {
				sum += v.value(s, c)
			}
			values = append(values, sum)
			labels = append(labels, label)
		default:
			for s := range v.Series {
				values = append(values, v.value(s, c))
				if s == 0 {
					labels = append(labels, label)
				} else {
					labels = append(labels, "")
				}
			}
		}
	}
	return values, labels
}

func (v BarChartView) scaleMax(values []float64) float64 {
	if v.Max > 0 {
		return v.Max
	}
	m := 0.0
	for _, x := range values {
		m = max(m, x)
	}
	if m == 0 {
		return 1
	}
	return m
}

// ComposeBarChart renders the chart in its orientation
// Unknown modes draw grouped and unknown orientations draw vertical
func ComposeBarChart(v BarChartView) string {
	if v.Width <= 0 || v.Height <= 0 {
		return ""
	}
	if v.Orientation == raster.Horizontal {
		return composeHorizontalBars(v)
	}
	return composeVerticalBars(v)
}

// composeVerticalBars draws one cell wide columns separated by a gap, labels on the last row
func composeVerticalBars(v BarChartView) string {
	values, labels := v.bars()
	top := v.scaleMax(values)

	plotH := v.Height - 1
	if plotH < 1 {
		plotH = v.Height
	}
	grid := make([][]rune, v.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", v.Width))
	}

	for i, val := range values {
		x := i * 2
		if x >= v.Width {
			break
		}
		col := raster.VerticalBlockColumn(val/top, plotH)
		for y, ch := range col {
			grid[y][x] = ch
		}
		if plotH < v.Height && labels[i] != "" {
			if r := []rune(labels[i]); len(r) > 0 {
				grid[v.Height-1][x] = r[0]
			}
		}
	}

	rows := make([]string, v.Height)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return strings.Join(rows, "\n")
}

// composeHorizontalBars draws one row per bar with a label gutter
func composeHorizontalBars(v BarChartView) string {
	values, labels := v.bars()
	top := v.scaleMax(values)

	gutter := 0
	for _, l := range labels {
		gutter = max(gutter, runewidth.StringWidth(l))
	}
	gutter = min(gutter, v.Width/3)
	barW := v.Width - gutter
	if gutter > 0 {
		barW--
	}

	rows := make([]string, v.Height)
	for y := 0; y < v.Height; y++ {
		if y >= len(values) {
			rows[y] = strings.Repeat(" ", v.Width)
			continue
		}
		var sb strings.Builder
		if gutter > 0 {
			sb.WriteString(runewidth.FillRight(runewidth.Truncate(labels[y], gutter, ""), gutter))
			sb.WriteByte(' ')
		}
		sb.WriteString(raster.HorizontalBlockBar(values[y]/top, barW))
		rows[y] = PadRow(sb.String(), v.Width)
	}
	return strings.Join(rows, "\n")
}
