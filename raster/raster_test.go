package raster

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fullCell  = string(BrailleRune(BrailleFull))
	halfCell  = string(BrailleRune(BrailleLeftCol))
	emptyCell = string(BrailleRune(BrailleEmpty))
)

func TestBrailleFillPattern(t *testing.T) {
	assert.Equal(t, byte(0x00), BrailleFillPattern(0))
	assert.Equal(t, byte(0xFF), BrailleFillPattern(1))
	assert.Equal(t, byte(0x47), BrailleFillPattern(0.01))
	assert.Equal(t, byte(0x47), BrailleFillPattern(0.99))
	assert.Equal(t, byte(0x00), BrailleFillPattern(-5))
	assert.Equal(t, byte(0xFF), BrailleFillPattern(7))
	assert.Equal(t, byte(0x00), BrailleFillPattern(math.NaN()))
}

func TestBrailleFillPatternMonotonic(t *testing.T) {
	prev := BrailleFillPattern(-1)
	for x := -1.0; x <= 2.0; x += 0.01 {
		cur := BrailleFillPattern(x)
		assert.GreaterOrEqual(t, cur, prev, "x=%v", x)
		prev = cur
	}
}

func TestRenderBrailleBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		width    int
		want     string
	}{
		{"half", 0.5, 10, strings.Repeat(fullCell, 5) + strings.Repeat(emptyCell, 5)},
		{"three quarters", 0.75, 10, strings.Repeat(fullCell, 7) + halfCell + strings.Repeat(emptyCell, 2)},
		{"empty", 0, 4, strings.Repeat(emptyCell, 4)},
		{"full", 1, 3, strings.Repeat(fullCell, 3)},
		{"over clamps", 3, 3, strings.Repeat(fullCell, 3)},
		{"under clamps", -1, 2, strings.Repeat(emptyCell, 2)},
		{"zero width", 0.5, 0, ""},
		{"negative width", 0.5, -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderBrailleBar(tt.fraction, tt.width))
		})
	}
}

func TestBrailleChar(t *testing.T) {
	assert.Equal(t, "⠁", BrailleChar(0, 0))
	assert.Equal(t, "⢀", BrailleChar(1, 3))
	assert.Equal(t, " ", BrailleChar(2, 0))
	assert.Equal(t, " ", BrailleChar(0, 4))
	assert.Equal(t, " ", BrailleChar(-1, 1))
}

func TestCombineBrailleDots(t *testing.T) {
	assert.Equal(t, "⠀", CombineBrailleDots(nil))
	assert.Equal(t, "⠉", CombineBrailleDots([]Dot{{0, 0}, {1, 0}}))
	assert.Equal(t, "⠉", CombineBrailleDots([]Dot{{0, 0}, {1, 0}, {5, 5}, {-1, 0}}), "invalid dots skipped")

	all := make([]Dot, 0, 8)
	for c := 0; c < 2; c++ {
		for r := 0; r < 4; r++ {
			all = append(all, Dot{c, r})
		}
	}
	assert.Equal(t, fullCell, CombineBrailleDots(all))
}

func TestBlockChar(t *testing.T) {
	assert.Equal(t, ' ', BlockChar(0, Vertical))
	assert.Equal(t, '▄', BlockChar(0.5, Vertical))
	assert.Equal(t, '█', BlockChar(1, Vertical))
	assert.Equal(t, '▌', BlockChar(0.5, Horizontal))
	assert.Equal(t, '▏', BlockChar(0.125, Horizontal))
	assert.Equal(t, '█', BlockChar(4, Horizontal))
	assert.Equal(t, ' ', BlockChar(-4, Horizontal))
}

func TestBlockCharUnknownOrientation(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
	}{
		{"empty", 0},
		{"half", 0.5},
		{"full", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() { BlockChar(tt.ratio, Orientation(9)) })
			assert.Equal(t, BlockChar(tt.ratio, Horizontal), BlockChar(tt.ratio, Orientation(9)))
		})
	}
}

func TestHorizontalBlockBar(t *testing.T) {
	assert.Equal(t, "██▌ ", HorizontalBlockBar(0.625, 4))
	assert.Equal(t, "    ", HorizontalBlockBar(0, 4))
	assert.Equal(t, "", HorizontalBlockBar(0.5, 0))
}

func TestVerticalBlockColumn(t *testing.T) {
	assert.Equal(t, []rune{' ', '▄', '█'}, VerticalBlockColumn(0.5, 3))
	assert.Equal(t, []rune{'█', '█'}, VerticalBlockColumn(1.2, 2))
	assert.Nil(t, VerticalBlockColumn(0.5, 0))
}

func TestCanvasPixels(t *testing.T) {
	c := NewCanvas(2, 1)
	w, h := c.Size()
	require.Equal(t, 4, w)
	require.Equal(t, 4, h)

	c.SetPixel(0, 0)
	c.SetPixel(3, 3)
	c.SetPixel(-1, 0)
	c.SetPixel(4, 0)
	c.SetPixel(0, 4)

	assert.True(t, c.Pixel(0, 0))
	assert.True(t, c.Pixel(3, 3))
	assert.False(t, c.Pixel(1, 1))
	assert.False(t, c.Pixel(99, 99))
	assert.Equal(t, "⠁⢀", c.String())

	c.ClearPixel(0, 0)
	assert.False(t, c.Pixel(0, 0))

	c.Clear()
	assert.Equal(t, emptyCell+emptyCell, c.String())
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		assert.True(t, c.Pixel(i, i), "diagonal dot %d", i)
	}

	c.Clear()
	c.DrawLine(7, 2, 0, 2)
	for x := 0; x < 8; x++ {
		assert.True(t, c.Pixel(x, 2))
	}
	assert.False(t, c.Pixel(0, 3))

	c.Clear()
	c.DrawLine(1, 1, 1, 1)
	assert.True(t, c.Pixel(1, 1))
}

func TestCanvasRect(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawRect(1, 1, 4, 3, false)
	assert.True(t, c.Pixel(1, 1))
	assert.True(t, c.Pixel(4, 1))
	assert.True(t, c.Pixel(1, 3))
	assert.True(t, c.Pixel(4, 3))
	assert.True(t, c.Pixel(1, 2))
	assert.False(t, c.Pixel(2, 2), "outline leaves interior empty")

	c.Clear()
	c.DrawRect(1, 1, 4, 3, true)
	assert.True(t, c.Pixel(2, 2))

	c.Clear()
	c.DrawRect(0, 0, 0, 5, true)
	assert.Equal(t, strings.Repeat(emptyCell, 3)+"\n"+strings.Repeat(emptyCell, 3), c.String())
}

func TestCanvasClipsOffCanvasShapes(t *testing.T) {
	const far = 1_000_000_000
	tests := []struct {
		name  string
		draw  func(c *Canvas)
		on    [][2]int
		empty bool
	}{
		{
			name: "huge filled rect",
			draw: func(c *Canvas) { c.DrawRect(-far, -far, 2*far, 2*far, true) },
			on:   [][2]int{{0, 0}, {7, 7}, {3, 4}},
		},
		{
			name:  "huge outline rect edges off canvas",
			draw:  func(c *Canvas) { c.DrawRect(-far, -far, 2*far, 2*far, false) },
			empty: true,
		},
		{
			name: "long horizontal line",
			draw: func(c *Canvas) { c.DrawLine(-far, 3, far, 3) },
			on:   [][2]int{{0, 3}, {7, 3}},
		},
		{
			name: "long diagonal line",
			draw: func(c *Canvas) { c.DrawLine(-far, -far, far, far) },
			on:   [][2]int{{0, 0}, {4, 4}, {7, 7}},
		},
		{
			name:  "line entirely outside",
			draw:  func(c *Canvas) { c.DrawLine(-far, -5, far, -5) },
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 2)
			tt.draw(c)
			if tt.empty {
				assert.Equal(t, strings.Repeat(emptyCell, 4)+"\n"+strings.Repeat(emptyCell, 4), c.String())
			}
			for _, p := range tt.on {
				assert.True(t, c.Pixel(p[0], p[1]), "dot %v", p)
			}
		})
	}
}

func TestCanvasFilledRectCoversCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawRect(-1_000_000_000, -1_000_000_000, 2_000_000_000, 2_000_000_000, true)
	assert.Equal(t, strings.Repeat(fullCell, 4)+"\n"+strings.Repeat(fullCell, 4), c.String())
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(6, 3)
	c.DrawCircle(5, 5, 4, false)
	assert.True(t, c.Pixel(9, 5))
	assert.True(t, c.Pixel(1, 5))
	assert.True(t, c.Pixel(5, 1))
	assert.True(t, c.Pixel(5, 9))
	assert.False(t, c.Pixel(5, 5), "outline leaves center empty")

	c.Clear()
	c.DrawCircle(5, 5, 4, true)
	assert.True(t, c.Pixel(5, 5))
	assert.True(t, c.Pixel(7, 6))
	assert.False(t, c.Pixel(0, 0))

	c.Clear()
	c.DrawCircle(2, 2, 0, false)
	assert.True(t, c.Pixel(2, 2))

	// Clipped circle must not panic
	c.DrawCircle(0, 0, 20, true)
}
