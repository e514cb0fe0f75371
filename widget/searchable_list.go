package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

type SearchableListOptions struct {
	Bounds
	Items       []selection.Item
	Selected    int `validate:"gte=0"`
	MultiSelect bool
	Bell        Bell
}

// searchState remembers the query to restore when a search is cancelled
type searchState struct {
	previous string
}

// SearchableList is a list with a query row on top
// "/" starts a search; typing filters live, enter keeps the filter, escape restores the last one.
type SearchableList struct {
	*listCore
}

func NewSearchableList(w *engine.World, opts SearchableListOptions) (*SearchableList, error) {
	if err := validateOptions(w, "searchable-list", opts); err != nil {
		return nil, err
	}
	if opts.Height < 2 {
		err := validationFailure("height", "searchable list needs a query row and at least one item row")
		w.Log.With("widget", "searchable-list").Error(err, "invalid options")
		return nil, err
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "searchable-list",
		bounds:   opts.Bounds,
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.SearchableList,
		items:    opts.Items,
		selected: opts.Selected,
		multi:    opts.MultiSelect,
		visible:  opts.Height - 1,
	})
	if err != nil {
		return nil, err
	}
	s := &SearchableList{listCore: c}
	attachState(&s.base, &searchState{})
	s.render = s.compose
	s.focusStylingIn(interactive.StateFocused, interactive.StateSearching)
	s.redraw()
	return s, nil
}

func (s *SearchableList) Focus() bool { return s.send(interactive.EventFocus) }

func (s *SearchableList) Blur() bool { return s.send(interactive.EventBlur) }

// Filter returns the active query
func (s *SearchableList) Filter() string {
	if m := s.model(); m != nil {
		return m.Filter()
	}
	return ""
}

// SetFilter applies q directly, whatever the state
func (s *SearchableList) SetFilter(q string) {
	mutate(&s.base, func(st *listState) { st.list.SetFilter(q) })
}

// Visible returns the items that pass the filter
func (s *SearchableList) Visible() []selection.Item {
	if m := s.model(); m != nil {
		return m.Filtered()
	}
	return nil
}

func (s *SearchableList) HandleKey(key string) (Action, bool) {
	a, ok := HandleSearchableListKey(s.State(), key)
	if !ok {
		return a, false
	}
	s.Dispatch(a)
	return a, true
}

func (s *SearchableList) Dispatch(a Action) bool {
	m := s.model()
	st, ok := sideState[searchState](&s.base)
	if m == nil || !ok {
		return false
	}
	if s.behavior.IsDisabled() {
		s.reject(a)
		return false
	}

	var done bool
	switch a.Kind {
	case ActionStartSearch:
		st.previous = m.Filter()
		done = s.behavior.Send(interactive.EventSearch)
	case ActionInsertRune:
		done = s.behavior.IsOpen() && m.SetFilter(m.Filter()+string(a.Rune))
	case ActionDeleteRune:
		q := []rune(m.Filter())
		done = s.behavior.IsOpen() && len(q) > 0 && m.SetFilter(string(q[:len(q)-1]))
	case ActionConfirm:
		done = s.behavior.Send(interactive.EventConfirm)
	case ActionCancel:
		if s.behavior.Can(interactive.EventCancel) {
			m.SetFilter(st.previous)
			done = s.behavior.Send(interactive.EventCancel)
		}
	default:
		return s.dispatchList(a)
	}
	if !done {
		s.reject(a)
		return false
	}
	s.redraw()
	return true
}

func (s *SearchableList) compose() {
	m := s.model()
	if m == nil {
		return
	}
	w, h := s.Size()
	m.SetVisibleCount(h - 1)

	query := "/" + m.Filter()
	if s.behavior.IsOpen() {
		query += "█"
	}
	rows := append([]string{scrollHint(query, m, w)}, listRows(m, s.multi(), "> ", "  ")...)
	s.world.SetContent(s.entity, block(rows, w, h))
}

// scrollHint right-aligns the viewport position on the query row while items overflow it
func scrollHint(query string, m *selection.List, width int) string {
	n := m.Len()
	if m.VisibleCount() == 0 || n <= m.VisibleCount() {
		return query
	}
	hint := selection.ScrollIndicator(m.FirstVisible(), m.VisibleCount(), n)
	gap := width - runewidth.StringWidth(hint) - 1
	if gap < 1 {
		return query
	}
	return fitCell(query, gap) + " " + hint
}
