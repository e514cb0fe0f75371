package teahost

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lixenwraith/tuikit/widget"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Bindings lists the keys the host consumes before widgets see them
func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Quit}
}

// bubbletea names that differ from widget key names
var teaKeys = map[string]string{
	"esc":       widget.KeyEscape,
	" ":         widget.KeySpace,
	"shift+tab": widget.KeyBacktab,
	"pgup":      widget.KeyPageUp,
	"pgdown":    widget.KeyPageDown,
}

// KeyName converts a bubbletea key to the widget key name
func KeyName(msg tea.KeyMsg) string {
	s := msg.String()
	if name, ok := teaKeys[s]; ok {
		return name
	}
	return s
}
