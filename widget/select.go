package widget

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

// DefaultSelectRows is the dropdown height when SelectOptions.Rows is 0
const DefaultSelectRows = 5

// SelectOptions places a dropdown by its closed one row footprint
type SelectOptions struct {
	X           int `validate:"gte=0"`
	Y           int `validate:"gte=0"`
	Width       int `validate:"gte=3"`
	Rows        int `validate:"gte=0,lte=100"`
	Items       []selection.Item
	Selected    int    `validate:"gte=0"`
	Placeholder string `validate:"max=64"`
	Bell        Bell
}

// Select is a dropdown: closed, open or disabled
// While open the cursor moves without changing the value; enter commits, escape restores.
type Select struct {
	*listCore
	rows        int
	placeholder string
}

func NewSelect(w *engine.World, opts SelectOptions) (*Select, error) {
	if err := validateOptions(w, "select", opts); err != nil {
		return nil, err
	}
	rows := opts.Rows
	if rows == 0 {
		rows = DefaultSelectRows
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "select",
		bounds:   Bounds{X: opts.X, Y: opts.Y, Width: opts.Width, Height: 1},
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.Select,
		items:    opts.Items,
		selected: opts.Selected,
		noWrap:   true,
		visible:  rows,
	})
	if err != nil {
		return nil, err
	}
	s := &Select{listCore: c, rows: rows, placeholder: opts.Placeholder}
	if m := s.model(); m != nil {
		m.SetDeferCommit(true)
	}
	s.render = s.compose
	s.behavior.OnOpen.Add(func(fsm.Change) { s.expand(true) })
	s.behavior.OnClose.Add(func(fsm.Change) { s.expand(false) })
	s.redraw()
	return s, nil
}

func (s *Select) IsOpen() bool { return s.behavior.IsOpen() }

func (s *Select) Open() bool { return s.send(interactive.EventOpen) }

func (s *Select) Close() bool { return s.send(interactive.EventClose) }

// Value returns the committed item text, "" when nothing is selected
func (s *Select) Value() string {
	item, ok := s.Selected()
	if !ok {
		return ""
	}
	return item.Text
}

// expand grows the entity over what lies below it while open
func (s *Select) expand(open bool) {
	m := s.model()
	if m == nil {
		return
	}
	m.ResetHighlight()
	w, _ := s.Size()
	if open {
		s.world.SetLayer(s.entity, component.ZIndexPopup)
		s.world.SetDimension(s.entity, w, 1+max(min(s.rows, m.Len()), 1))
		s.setFocusStyle(true)
		return
	}
	s.world.SetLayer(s.entity, component.ZIndexWidget)
	s.world.SetDimension(s.entity, w, 1)
	s.setFocusStyle(false)
}

func (s *Select) HandleKey(key string) (Action, bool) {
	a, ok := HandleSelectKey(s.State(), key)
	if !ok {
		return a, false
	}
	s.Dispatch(a)
	return a, true
}

func (s *Select) Dispatch(a Action) bool {
	m := s.model()
	if m == nil {
		return false
	}
	if s.behavior.IsDisabled() {
		s.reject(a)
		return false
	}

	var done bool
	if s.behavior.IsOpen() {
		var handled bool
		done, handled = s.navigate(m, a)
		if !handled {
			switch a.Kind {
			case ActionSelectHighlighted:
				done = s.commit(m) && s.behavior.Send(interactive.EventSelect)
			case ActionCancel:
				done = s.behavior.Send(interactive.EventCancel)
			case ActionClose:
				done = s.behavior.Send(interactive.EventClose)
			}
		}
	} else {
		switch a.Kind {
		case ActionOpen:
			done = s.behavior.Send(interactive.EventOpen)
		case ActionJump:
			// closed jump changes the value in place
			done = m.JumpToMatch(string(a.Rune)) && s.commit(m)
		}
	}
	if !done {
		s.reject(a)
		return false
	}
	s.redraw()
	return true
}

func (s *Select) compose() {
	m := s.model()
	if m == nil {
		return
	}
	w, h := s.Size()

	header := s.placeholder
	if item, ok := m.SelectedItem(); ok {
		header = item.Text
	}
	arrow := " ▾"
	if s.behavior.IsOpen() {
		arrow = " ▴"
	}
	rows := []string{fitCell(header, w-2) + arrow}
	if s.behavior.IsOpen() {
		rows = append(rows, listRows(m, false, "> ", "  ")...)
	}
	s.world.SetContent(s.entity, block(rows, w, h))
}
