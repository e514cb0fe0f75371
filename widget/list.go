package widget

import (
	"slices"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

// listState is the side state of every list-like widget
type listState struct {
	list  *selection.List
	multi bool
}

// listCore is shared by list, listbar, select, searchable list, list table and radio group
type listCore struct {
	base
	behavior *interactive.Behavior

	// OnSelect fires with the committed item
	OnSelect event.Hooks[selection.Item]
	// OnMark fires with the original index and its new mark state
	OnMark event.Hooks[MarkChange]
}

// MarkChange reports a toggled mark
type MarkChange struct {
	Index  int
	Marked bool
}

type listCoreOptions struct {
	kind     string
	bounds   Bounds
	z        int
	bell     Bell
	spec     interactive.Spec
	items    []selection.Item
	selected int
	noWrap   bool
	multi    bool
	visible  int
}

// newListCore builds the entity, list model and machine; the caller sets render
func newListCore(w *engine.World, o listCoreOptions) (*listCore, error) {
	c := &listCore{base: newBase(w, o.kind, o.bounds, o.z, o.bell)}

	l := selection.NewList(o.items)
	l.SetWrap(!o.noWrap)
	l.SetVisibleCount(o.visible)
	l.Select(o.selected)
	attachState(&c.base, &listState{list: l, multi: o.multi})

	b, err := interactive.Attach(w, c.entity, o.spec)
	if err != nil {
		_ = c.Destroy()
		return nil, err
	}
	c.behavior = b
	return c, nil
}

// model returns the selection engine, nil once destroyed
func (c *listCore) model() *selection.List {
	st, ok := sideState[listState](&c.base)
	if !ok {
		return nil
	}
	return st.list
}

func (c *listCore) multi() bool {
	st, ok := sideState[listState](&c.base)
	return ok && st.multi
}

// State returns the machine state, "" once destroyed
func (c *listCore) State() string { return c.behavior.State() }

// Behavior exposes the machine wrapper for transition hooks
func (c *listCore) Behavior() *interactive.Behavior { return c.behavior }

func (c *listCore) Disable() bool { return c.send(interactive.EventDisable) }

func (c *listCore) Enable() bool { return c.send(interactive.EventEnable) }

func (c *listCore) send(ev string) bool {
	if !c.behavior.Send(ev) {
		return false
	}
	c.redraw()
	return true
}

// Selected returns the committed item
func (c *listCore) Selected() (selection.Item, bool) {
	if l := c.model(); l != nil {
		return l.SelectedItem()
	}
	return selection.Item{}, false
}

// SelectedIndex returns the committed position in the unfiltered items, -1 when none
func (c *listCore) SelectedIndex() int {
	if l := c.model(); l != nil {
		return l.OriginalSelected()
	}
	return -1
}

// Highlighted returns the filtered position under the cursor
func (c *listCore) Highlighted() int {
	if l := c.model(); l != nil {
		return l.Highlighted()
	}
	return -1
}

// Marked returns the marked unfiltered indices ascending
func (c *listCore) Marked() []int {
	if l := c.model(); l != nil {
		return l.Marked()
	}
	return nil
}

func (c *listCore) SetItems(items []selection.Item) {
	mutate(&c.base, func(st *listState) { st.list.SetItems(items) })
}

// SetSelected commits the unfiltered index i if it is in the current view
func (c *listCore) SetSelected(i int) bool {
	l := c.model()
	if l == nil {
		return false
	}
	pos := l.FilteredIndex(i)
	if pos < 0 {
		return false
	}
	l.Select(pos)
	c.redraw()
	return true
}

// navigate runs the movement actions every list shares
// handled is false for actions it does not know
func (c *listCore) navigate(l *selection.List, a Action) (done, handled bool) {
	switch a.Kind {
	case ActionHighlightNext:
		return l.HighlightNext(), true
	case ActionHighlightPrev:
		return l.HighlightPrev(), true
	case ActionHighlightFirst:
		return l.HighlightFirst(), true
	case ActionHighlightLast:
		return l.HighlightLast(), true
	case ActionPageUp:
		return l.ScrollPage(-1), true
	case ActionPageDown:
		return l.ScrollPage(1), true
	case ActionJump:
		return l.JumpToMatch(string(a.Rune)), true
	}
	return false, false
}

// commit selects the highlight and notifies
func (c *listCore) commit(l *selection.List) bool {
	if !l.SelectHighlighted() {
		return false
	}
	item, _ := l.SelectedItem()
	c.world.Notify(c.entity, event.Select, item.Text)
	c.OnSelect.Fire(item)
	return true
}

// toggleMark flips the highlighted item's mark in multi-select lists
func (c *listCore) toggleMark(l *selection.List) bool {
	if !c.multi() {
		return false
	}
	orig := l.OriginalIndex(l.Highlighted())
	if orig < 0 {
		return false
	}
	item, _ := l.HighlightedItem()
	marked := l.ToggleMark(orig)
	c.world.Notify(c.entity, event.Mark, item.Text)
	c.OnMark.Fire(MarkChange{Index: orig, Marked: marked})
	return true
}

// dispatchList executes actions common to focusable lists
func (c *listCore) dispatchList(a Action) bool {
	l := c.model()
	if l == nil {
		return false
	}
	if c.behavior.IsDisabled() {
		c.reject(a)
		return false
	}

	done, handled := c.navigate(l, a)
	if !handled {
		switch a.Kind {
		case ActionFocus:
			done = c.behavior.Send(interactive.EventFocus)
		case ActionBlur:
			done = c.behavior.Send(interactive.EventBlur)
		case ActionSelectHighlighted:
			done = c.commit(l)
		case ActionToggleMark:
			done = c.toggleMark(l)
		}
	}
	if !done {
		c.reject(a)
		return false
	}
	c.redraw()
	return true
}

// focusStyling follows the machine's open boundary with the theme focus colors
func (c *listCore) focusStyling() {
	c.behavior.OnOpen.Add(func(_ fsm.Change) { c.setFocusStyle(true) })
	c.behavior.OnClose.Add(func(_ fsm.Change) { c.setFocusStyle(false) })
}

// focusStylingIn applies the focus colors while the machine sits in any of states
func (c *listCore) focusStylingIn(states ...string) {
	c.behavior.OnTransition.Add(func(ch fsm.Change) {
		c.setFocusStyle(slices.Contains(states, ch.To))
	})
}

// --- list ---

type ListOptions struct {
	Bounds
	Items       []selection.Item
	Selected    int  `validate:"gte=0"`
	MultiSelect bool // space toggles marks
	NoWrap      bool
	Bell        Bell
}

// List is a vertical scrolling list: idle, focused or disabled
type List struct {
	*listCore
}

func NewList(w *engine.World, opts ListOptions) (*List, error) {
	if err := validateOptions(w, "list", opts); err != nil {
		return nil, err
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "list",
		bounds:   opts.Bounds,
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.List,
		items:    opts.Items,
		selected: opts.Selected,
		noWrap:   opts.NoWrap,
		multi:    opts.MultiSelect,
		visible:  opts.Height,
	})
	if err != nil {
		return nil, err
	}
	l := &List{listCore: c}
	l.render = l.compose
	l.focusStyling()
	l.redraw()
	return l, nil
}

func (l *List) Focus() bool { return l.send(interactive.EventFocus) }

func (l *List) Blur() bool { return l.send(interactive.EventBlur) }

// HandleKey maps key for the current state and dispatches the action
func (l *List) HandleKey(key string) (Action, bool) {
	a, ok := HandleListKey(l.State(), key)
	if !ok {
		return a, false
	}
	l.Dispatch(a)
	return a, true
}

// Dispatch executes a; a rejected action rings the bell and reports false
func (l *List) Dispatch(a Action) bool {
	return l.dispatchList(a)
}

func (l *List) compose() {
	m := l.model()
	if m == nil {
		return
	}
	w, h := l.Size()
	m.SetVisibleCount(h)
	l.world.SetContent(l.entity, block(listRows(m, l.multi(), "> ", "  "), w, h))
}

// listRows renders the viewport with a cursor prefix and optional mark boxes
func listRows(m *selection.List, multi bool, cursor, blank string) []string {
	start, end := m.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item, _ := m.Item(i)
		prefix := blank
		if i == m.Highlighted() {
			prefix = cursor
		}
		if multi {
			if m.IsMarked(m.OriginalIndex(i)) {
				prefix += "[x] "
			} else {
				prefix += "[ ] "
			}
		}
		rows = append(rows, prefix+item.Text)
	}
	return rows
}
