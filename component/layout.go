// Package component defines the small per-entity records kept in world stores
package component

// PositionComponent is the top-left cell of an entity
type PositionComponent struct {
	X, Y int
}

// DimensionComponent is the cell footprint of an entity
type DimensionComponent struct {
	Width, Height int
}

// Contains reports whether cell (x,y) lies inside the rectangle at p
func (d DimensionComponent) Contains(p PositionComponent, x, y int) bool {
	return x >= p.X && y >= p.Y && x < p.X+d.Width && y < p.Y+d.Height
}

// LayerComponent orders drawing; higher Z is drawn later, on top
type LayerComponent struct {
	Z int
}

// Z-index bands used by the widget factories
const (
	ZIndexBackground = 0
	ZIndexWidget     = 100
	ZIndexFocused    = 200
	ZIndexPopup      = 500
	ZIndexDialog     = 1000
)
