package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/widget"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         widget.KeyUp,
	tcell.KeyDown:       widget.KeyDown,
	tcell.KeyLeft:       widget.KeyLeft,
	tcell.KeyRight:      widget.KeyRight,
	tcell.KeyEnter:      widget.KeyEnter,
	tcell.KeyEscape:     widget.KeyEscape,
	tcell.KeyTab:        widget.KeyTab,
	tcell.KeyBacktab:    widget.KeyBacktab,
	tcell.KeyBackspace:  widget.KeyBackspace,
	tcell.KeyBackspace2: widget.KeyBackspace,
	tcell.KeyHome:       widget.KeyHome,
	tcell.KeyEnd:        widget.KeyEnd,
	tcell.KeyPgUp:       widget.KeyPageUp,
	tcell.KeyPgDn:       widget.KeyPageDown,
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// KeyName returns the widget key name for a tcell key event, "" when it has none.
// Printable runes map to themselves, ' ' to "space", control letters to "ctrl+x".
// Alt adds an "alt+" prefix to runes.
func KeyName(ev *tcell.EventKey) string {
	if ev == nil {
		return ""
	}
	k := ev.Key()
	if name, ok := keyNames[k]; ok {
		return name
	}

	switch {
	case k == tcell.KeyRune:
		name := string(ev.Rune())
		if ev.Rune() == ' ' {
			name = widget.KeySpace
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + name
		}
		return name
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return ""
}
