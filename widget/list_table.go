package widget

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

// Column heads a list table column; Width 0 fits the widest cell
type Column struct {
	Title string `validate:"required"`
	Width int    `validate:"gte=0"`
}

type ListTableOptions struct {
	Bounds
	Columns     []Column `validate:"min=1,dive"`
	Rows        [][]string
	Selected    int `validate:"gte=0"`
	MultiSelect bool
	Bell        Bell
}

type tableState struct {
	columns []Column
	rows    [][]string
	widths  []int
}

const columnGap = "  "

// ListTable is a list whose rows are aligned columns under a header row
// Jumping and filtering look at all cells of a row.
type ListTable struct {
	*listCore
}

func NewListTable(w *engine.World, opts ListTableOptions) (*ListTable, error) {
	if err := validateOptions(w, "list-table", opts); err != nil {
		return nil, err
	}
	if opts.Height < 2 {
		err := validationFailure("height", "list table needs a header row and at least one item row")
		w.Log.With("widget", "list-table").Error(err, "invalid options")
		return nil, err
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "list-table",
		bounds:   opts.Bounds,
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.List,
		items:    rowItems(opts.Rows),
		selected: opts.Selected,
		multi:    opts.MultiSelect,
		visible:  opts.Height - 1,
	})
	if err != nil {
		return nil, err
	}
	t := &ListTable{listCore: c}
	st := &tableState{columns: slices.Clone(opts.Columns)}
	st.setRows(opts.Rows)
	attachState(&t.base, st)
	t.render = t.compose
	t.focusStyling()
	t.redraw()
	return t, nil
}

// rowItems carries the row index as the item value
func rowItems(rows [][]string) []selection.Item {
	items := make([]selection.Item, len(rows))
	for i, r := range rows {
		items[i] = selection.Item{Text: strings.Join(r, " "), Value: i}
	}
	return items
}

func (st *tableState) setRows(rows [][]string) {
	st.rows = make([][]string, len(rows))
	for i, r := range rows {
		st.rows[i] = slices.Clone(r)
	}
	st.widths = columnWidths(st.columns, st.rows)
}

// columnWidths resolves fit-to-content columns by display width
func columnWidths(cols []Column, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		widths[i] = runewidth.StringWidth(c.Title)
		for _, r := range rows {
			if i < len(r) {
				widths[i] = max(widths[i], runewidth.StringWidth(r[i]))
			}
		}
	}
	return widths
}

// formatRow aligns cells to widths; missing cells are blank
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fitCell(cell, w)
	}
	return strings.Join(parts, columnGap)
}

// SetRows replaces the table body, resetting selection and marks
func (t *ListTable) SetRows(rows [][]string) {
	st, ok := sideState[tableState](&t.base)
	if !ok {
		return
	}
	st.setRows(rows)
	t.SetItems(rowItems(rows))
}

// ColumnWidths returns the resolved width of each column
func (t *ListTable) ColumnWidths() []int {
	st, ok := sideState[tableState](&t.base)
	if !ok {
		return nil
	}
	return slices.Clone(st.widths)
}

// SelectedRow returns the cells of the committed row
func (t *ListTable) SelectedRow() []string {
	st, ok := sideState[tableState](&t.base)
	i := t.SelectedIndex()
	if !ok || i < 0 || i >= len(st.rows) {
		return nil
	}
	return slices.Clone(st.rows[i])
}

func (t *ListTable) Focus() bool { return t.send(interactive.EventFocus) }

func (t *ListTable) Blur() bool { return t.send(interactive.EventBlur) }

func (t *ListTable) HandleKey(key string) (Action, bool) {
	a, ok := HandleListKey(t.State(), key)
	if !ok {
		return a, false
	}
	t.Dispatch(a)
	return a, true
}

func (t *ListTable) Dispatch(a Action) bool {
	return t.dispatchList(a)
}

func (t *ListTable) compose() {
	m := t.model()
	st, ok := sideState[tableState](&t.base)
	if m == nil || !ok {
		return
	}
	w, h := t.Size()
	m.SetVisibleCount(h - 1)
	multi := t.multi()

	titles := make([]string, len(st.columns))
	for i, c := range st.columns {
		titles[i] = c.Title
	}
	indent := "  "
	if multi {
		indent += "    "
	}
	rows := []string{indent + formatRow(titles, st.widths)}

	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		orig := m.OriginalIndex(i)
		prefix := "  "
		if i == m.Highlighted() {
			prefix = "> "
		}
		if multi {
			if m.IsMarked(orig) {
				prefix += "[x] "
			} else {
				prefix += "[ ] "
			}
		}
		var cells []string
		if orig < len(st.rows) {
			cells = st.rows[orig]
		}
		rows = append(rows, prefix+formatRow(cells, st.widths))
	}
	t.world.SetContent(t.entity, block(rows, w, h))
}
