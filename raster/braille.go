// Package raster converts fractional fills and dot coordinates into sub-character glyphs
//
// Braille cells are used as a generic 2x4 monochrome pixel grid. Block glyphs provide
// 1/8 step resolution along one axis. Invalid input is clamped or ignored, never an error.
package raster

import (
	"math"
	"strings"

	"github.com/lixenwraith/tuikit/vmath"
)

// BrailleBase is the empty braille cell U+2800
const BrailleBase = 0x2800

// Braille fill masks
const (
	BrailleEmpty   byte = 0x00
	BrailleFull    byte = 0xFF
	BrailleLeftCol byte = 0x01 | 0x02 | 0x04 | 0x40 // column 0, rows 0-3
)

// brailleSubUnits is the number of fill steps per cell in RenderBrailleBar
const brailleSubUnits = 2

// brailleDots[col][row] is the dot bit for each of the 8 positions
var brailleDots = [2][4]byte{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Dot addresses one braille dot within a cell
type Dot struct {
	Col, Row int
}

// BrailleDot returns the mask bit for (col,row), 0 when out of range
func BrailleDot(col, row int) byte {
	if col < 0 || col > 1 || row < 0 || row > 3 {
		return 0
	}
	return brailleDots[col][row]
}

// BrailleRune returns the braille glyph for a dot mask
func BrailleRune(mask byte) rune {
	return rune(BrailleBase | int(mask))
}

// BrailleFillPattern maps a fill fraction to a single cell mask
// Any fraction strictly between 0 and 1 renders the left column only
func BrailleFillPattern(fraction float64) byte {
	f := vmath.Clamp01(fraction)
	switch {
	case f <= 0:
		return BrailleEmpty
	case f >= 1:
		return BrailleFull
	default:
		return BrailleLeftCol
	}
}

// RenderBrailleBar renders a horizontal bar of widthCells braille glyphs
// Each cell carries two fill steps: full, half (left column) or empty
func RenderBrailleBar(fraction float64, widthCells int) string {
	if widthCells <= 0 {
		return ""
	}
	f := vmath.Clamp01(fraction)

	total := widthCells * brailleSubUnits
	filled := int(math.Floor(f*float64(total) + 0.5))
	full := filled / brailleSubUnits
	partial := filled%brailleSubUnits != 0

	var sb strings.Builder
	sb.Grow(widthCells * 3)
	for i := 0; i < widthCells; i++ {
		switch {
		case i < full:
			sb.WriteRune(BrailleRune(BrailleFull))
		case i == full && partial:
			sb.WriteRune(BrailleRune(BrailleLeftCol))
		default:
			sb.WriteRune(BrailleRune(BrailleEmpty))
		}
	}
	return sb.String()
}

// BrailleChar returns a single-dot glyph, or a space for an invalid coordinate
func BrailleChar(col, row int) string {
	bit := BrailleDot(col, row)
	if bit == 0 {
		return " "
	}
	return string(BrailleRune(bit))
}

// CombineBrailleDots ORs the valid dots into one glyph, invalid dots are skipped
func CombineBrailleDots(dots []Dot) string {
	var mask byte
	for _, d := range dots {
		mask |= BrailleDot(d.Col, d.Row)
	}
	return string(BrailleRune(mask))
}
