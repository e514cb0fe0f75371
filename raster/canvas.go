package raster

import (
	"math"
	"strings"
)

// Canvas is a dot-addressed bitmap backed by braille cells
// Dot space is 2 dots per cell horizontally and 4 dots per cell vertically
type Canvas struct {
	cols, rows int
	masks      []byte
}

// NewCanvas creates a canvas of cols x rows character cells, negative sizes become 0
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &Canvas{
		cols:  cols,
		rows:  rows,
		masks: make([]byte, cols*rows),
	}
}

// Cells returns the canvas size in character cells
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the canvas size in dots
func (c *Canvas) Size() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Clear erases every dot
func (c *Canvas) Clear() {
	clear(c.masks)
}

func (c *Canvas) locate(x, y int) (idx int, bit byte, ok bool) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return (y/4)*c.cols + x/2, brailleDots[x%2][y%4], true
}

// SetPixel turns a dot on, out of range is a no-op
func (c *Canvas) SetPixel(x, y int) {
	if idx, bit, ok := c.locate(x, y); ok {
		c.masks[idx] |= bit
	}
}

// ClearPixel turns a dot off, out of range is a no-op
func (c *Canvas) ClearPixel(x, y int) {
	if idx, bit, ok := c.locate(x, y); ok {
		c.masks[idx] &^= bit
	}
}

// Pixel reports whether a dot is on
func (c *Canvas) Pixel(x, y int) bool {
	idx, bit, ok := c.locate(x, y)
	return ok && c.masks[idx]&bit != 0
}

// DrawLine plots an integer Bresenham line including both endpoints
// Lines leaving the canvas are clipped to it first
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	if !c.contains(x0, y0) || !c.contains(x1, y1) {
		var ok bool
		if x0, y0, x1, y1, ok = c.clipLine(x0, y0, x1, y1); !ok {
			return
		}
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) contains(x, y int) bool {
	w, h := c.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

// clipLine trims a segment to the dot area with Liang-Barsky, ok is false when nothing is visible
func (c *Canvas) clipLine(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0, false
	}
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	maxX, maxY := float64(w-1), float64(h-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0},
		{dx, maxX - fx0},
		{-dy, fy0},
		{dy, maxY - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}

	at := func(t, base, d, hi float64) int {
		return int(min(max(math.Round(base+t*d), 0), hi))
	}
	return at(t0, fx0, dx, maxX), at(t0, fy0, dy, maxY),
		at(t1, fx0, dx, maxX), at(t1, fy0, dy, maxY), true
}

// DrawRect plots a w x h rectangle with top-left (x,y), outline or filled
func (c *Canvas) DrawRect(x, y, w, h int, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	_, ch := c.Size()
	top, bottom := max(y, 0), min(y+h-1, ch-1)
	if filled {
		for row := top; row <= bottom; row++ {
			c.hline(x, x+w-1, row)
		}
		return
	}
	c.hline(x, x+w-1, y)
	c.hline(x, x+w-1, y+h-1)
	for row := top; row <= bottom; row++ {
		c.SetPixel(x, row)
		c.SetPixel(x+w-1, row)
	}
}

// DrawCircle plots a midpoint circle, filled circles use horizontal spans
func (c *Canvas) DrawCircle(cx, cy, r int, filled bool) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		if filled {
			c.hline(cx-x, cx+x, cy+y)
			c.hline(cx-x, cx+x, cy-y)
			c.hline(cx-y, cx+y, cy+x)
			c.hline(cx-y, cx+y, cy-x)
		} else {
			c.SetPixel(cx+x, cy+y)
			c.SetPixel(cx-x, cy+y)
			c.SetPixel(cx+x, cy-y)
			c.SetPixel(cx-x, cy-y)
			c.SetPixel(cx+y, cy+x)
			c.SetPixel(cx-y, cy+x)
			c.SetPixel(cx+y, cy-x)
			c.SetPixel(cx-y, cy-x)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (c *Canvas) hline(x0, x1, y int) {
	w, h := c.Size()
	if y < 0 || y >= h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := max(x0, 0); x <= min(x1, w-1); x++ {
		c.SetPixel(x, y)
	}
}

// Rows renders each cell row as a braille string
func (c *Canvas) Rows() []string {
	out := make([]string, c.rows)
	var sb strings.Builder
	for r := 0; r < c.rows; r++ {
		sb.Reset()
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(BrailleRune(c.masks[r*c.cols+col]))
		}
		out[r] = sb.String()
	}
	return out
}

// String joins Rows with newlines
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
