package component

import "github.com/lixenwraith/tuikit/color"

// TextStyle is a text attribute bitmask
type TextStyle uint8

const (
	StyleNormal    TextStyle = 0
	StyleBold      TextStyle = 1 << 0
	StyleDim       TextStyle = 1 << 1
	StyleUnderline TextStyle = 1 << 2
	StyleReverse   TextStyle = 1 << 3
)

// StyleComponent colors an entity's content; an unset color leaves the host default
type StyleComponent struct {
	Fg   color.Packed
	Bg   color.Packed
	Attr TextStyle
}

// ContentComponent is composed text, rows separated by '\n'
type ContentComponent struct {
	Text string
}

// VisibleComponent marks an entity for drawing
type VisibleComponent struct{}

// DirtyComponent marks an entity whose content changed since the last flush
type DirtyComponent struct{}
