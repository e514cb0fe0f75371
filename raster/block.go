package raster

import (
	"math"
	"strings"

	"github.com/lixenwraith/tuikit/vmath"
)

// Orientation selects the fill axis of block glyphs
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// 9-level LUTs, index is eighths filled
var (
	verticalBlocks   = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	horizontalBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}
)

// FullBlock is the solid cell glyph
const FullBlock = '█'

// BlockChar returns the block glyph nearest to ratio in 1/8 steps
// Unknown orientations draw horizontally
func BlockChar(ratio float64, o Orientation) rune {
	idx := eighths(ratio)
	if o == Vertical {
		return verticalBlocks[idx]
	}
	return horizontalBlocks[idx]
}

func eighths(ratio float64) int {
	idx := int(math.Floor(vmath.Clamp01(ratio)*8 + 0.5))
	if idx < 0 {
		return 0
	}
	if idx > 8 {
		return 8
	}
	return idx
}

// HorizontalBlockBar renders a left-to-right bar width cells wide in 1/8 cell steps
func HorizontalBlockBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	units := int(math.Floor(vmath.Clamp01(fraction)*float64(width*8) + 0.5))
	full := units / 8
	rem := units % 8

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < full:
			sb.WriteRune(FullBlock)
		case i == full && rem > 0:
			sb.WriteRune(horizontalBlocks[rem])
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// VerticalBlockColumn returns height glyphs top to bottom for a bottom-anchored column
func VerticalBlockColumn(fraction float64, height int) []rune {
	if height <= 0 {
		return nil
	}
	units := int(math.Floor(vmath.Clamp01(fraction)*float64(height*8) + 0.5))
	col := make([]rune, height)
	for i := 0; i < height; i++ {
		// i counts from the bottom
		level := units - i*8
		switch {
		case level >= 8:
			col[height-1-i] = FullBlock
		case level > 0:
			col[height-1-i] = verticalBlocks[level]
		default:
			col[height-1-i] = ' '
		}
	}
	return col
}
