package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/component"
)

// Style converts an entity style to a tcell style; unset colors keep the terminal default
func Style(s component.StyleComponent) tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.Fg.TCell()).
		Background(s.Bg.TCell()).
		Bold(s.Attr&component.StyleBold != 0).
		Dim(s.Attr&component.StyleDim != 0).
		Underline(s.Attr&component.StyleUnderline != 0).
		Reverse(s.Attr&component.StyleReverse != 0)
}
