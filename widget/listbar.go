package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

type ListbarOptions struct {
	Bounds
	Items    []selection.Item
	Selected int `validate:"gte=0"`
	NoWrap   bool
	Bell     Bell
}

// Listbar is a one row horizontal menu; digits 1-9 pick an entry directly
type Listbar struct {
	*listCore
}

func NewListbar(w *engine.World, opts ListbarOptions) (*Listbar, error) {
	if err := validateOptions(w, "listbar", opts); err != nil {
		return nil, err
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "listbar",
		bounds:   opts.Bounds,
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.List,
		items:    opts.Items,
		selected: opts.Selected,
		noWrap:   opts.NoWrap,
	})
	if err != nil {
		return nil, err
	}
	b := &Listbar{listCore: c}
	b.render = b.compose
	b.focusStyling()
	b.redraw()
	return b, nil
}

func (b *Listbar) Focus() bool { return b.send(interactive.EventFocus) }

func (b *Listbar) Blur() bool { return b.send(interactive.EventBlur) }

func (b *Listbar) HandleKey(key string) (Action, bool) {
	a, ok := HandleListbarKey(b.State(), key)
	if !ok {
		return a, false
	}
	b.Dispatch(a)
	return a, true
}

// Dispatch executes a; a digit jump selects that entry, counting from 1
func (b *Listbar) Dispatch(a Action) bool {
	if a.Kind == ActionJump && a.Rune >= '1' && a.Rune <= '9' {
		m := b.model()
		if m == nil {
			return false
		}
		i := int(a.Rune - '1')
		if b.behavior.IsDisabled() || i >= m.Len() {
			b.reject(a)
			return false
		}
		m.SetHighlighted(i)
		b.commit(m)
		b.redraw()
		return true
	}
	return b.dispatchList(a)
}

// compose lays entries out as " a  [b]  c " scrolled so the highlight is in view
func (b *Listbar) compose() {
	m := b.model()
	if m == nil {
		return
	}
	w, h := b.Size()

	cells := make([]string, m.Len())
	for i := range cells {
		item, _ := m.Item(i)
		if i == m.Highlighted() {
			cells[i] = "[" + item.Text + "]"
		} else {
			cells[i] = " " + item.Text + " "
		}
	}

	start := 0
	if hi := m.Highlighted(); hi >= 0 {
		for start < hi && spanWidth(cells[start:hi+1]) > w {
			start++
		}
	}
	b.world.SetContent(b.entity, block([]string{strings.Join(cells[start:], " ")}, w, h))
}

// spanWidth is the display width of cells joined by single spaces
func spanWidth(cells []string) int {
	n := max(len(cells)-1, 0)
	for _, c := range cells {
		n += runewidth.StringWidth(c)
	}
	return n
}
