// Package selection is the index engine behind every list-like widget
//
// A List holds items, an optional filter, a committed selection, a
// navigation highlight, a set of marked items and a viewport. Indices
// passed to and returned by List methods are positions in the filtered view
// unless the name says Original. Out-of-range input is clamped or ignored.
package selection

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Item is one list entry; Text is what filtering and matching look at
type Item struct {
	Text  string
	Value any
}

// Items builds plain items from strings
func Items(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{Text: t, Value: t}
	}
	return out
}

// List is not safe for concurrent use
type List struct {
	items    []Item
	filter   string
	filtered []int // filtered position -> original index

	selected    int // filtered position, -1 only when the view is empty
	highlighted int

	marks *roaring.Bitmap // original indices

	wrap          bool
	searchEnabled bool
	deferCommit   bool
	visibleCount  int // 0 = everything visible
	firstVisible  int
}

// NewList returns a list with wrapping navigation and search enabled
func NewList(items []Item) *List {
	l := &List{
		marks:         roaring.New(),
		wrap:          true,
		searchEnabled: true,
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the items, keeps the filter query and resets selection and marks
func (l *List) SetItems(items []Item) {
	l.items = append([]Item(nil), items...)
	l.marks.Clear()
	l.refilter()
	l.selected = ClampCursor(0, len(l.filtered))
	l.highlighted = l.selected
	l.firstVisible = 0
	l.ensureVisible()
}

// Items returns the unfiltered items
func (l *List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Len returns the number of items in the filtered view
func (l *List) Len() int {
	return len(l.filtered)
}

// Total returns the number of unfiltered items
func (l *List) Total() int {
	return len(l.items)
}

// Filtered returns the items in the filtered view, in original order
func (l *List) Filtered() []Item {
	out := make([]Item, len(l.filtered))
	for i, orig := range l.filtered {
		out[i] = l.items[orig]
	}
	return out
}

// Item returns the filtered item at i
func (l *List) Item(i int) (Item, bool) {
	if i < 0 || i >= len(l.filtered) {
		return Item{}, false
	}
	return l.items[l.filtered[i]], true
}

// OriginalIndex maps a filtered position to its unfiltered index, -1 when out of range
func (l *List) OriginalIndex(i int) int {
	if i < 0 || i >= len(l.filtered) {
		return -1
	}
	return l.filtered[i]
}

// FilteredIndex maps an unfiltered index to its filtered position, -1 when hidden
func (l *List) FilteredIndex(orig int) int {
	for i, o := range l.filtered {
		if o == orig {
			return i
		}
	}
	return -1
}

// --- selection and highlight ---

func (l *List) Selected() int { return l.selected }

// OriginalSelected returns the unfiltered index of the selection, -1 when none
func (l *List) OriginalSelected() int {
	return l.OriginalIndex(l.selected)
}

func (l *List) SelectedItem() (Item, bool) {
	return l.Item(l.selected)
}

// Select commits position i, clamped; highlight follows
func (l *List) Select(i int) {
	l.selected = ClampCursor(i, len(l.filtered))
	l.highlighted = l.selected
	l.ensureVisible()
}

func (l *List) Highlighted() int { return l.highlighted }

func (l *List) HighlightedItem() (Item, bool) {
	return l.Item(l.highlighted)
}

// SetHighlighted moves the highlight to i clamped into [0,Len-1]
func (l *List) SetHighlighted(i int) {
	l.moveHighlight(ClampCursor(i, len(l.filtered)))
}

// HighlightNext moves down one, wrapping when enabled; no-op on an empty view
func (l *List) HighlightNext() bool {
	return l.step(1)
}

// HighlightPrev moves up one, wrapping when enabled; no-op on an empty view
func (l *List) HighlightPrev() bool {
	return l.step(-1)
}

func (l *List) HighlightFirst() bool {
	if len(l.filtered) == 0 {
		return false
	}
	return l.moveHighlight(0)
}

func (l *List) HighlightLast() bool {
	if len(l.filtered) == 0 {
		return false
	}
	return l.moveHighlight(len(l.filtered) - 1)
}

func (l *List) step(delta int) bool {
	n := len(l.filtered)
	if n == 0 {
		return false
	}
	next := l.highlighted + delta
	switch {
	case next < 0 && l.wrap:
		next = n - 1
	case next >= n && l.wrap:
		next = 0
	default:
		next = ClampCursor(next, n)
	}
	return l.moveHighlight(next)
}

// moveHighlight reports whether the highlight moved
func (l *List) moveHighlight(i int) bool {
	moved := i != l.highlighted
	l.highlighted = i
	if !l.deferCommit {
		l.selected = i
	}
	l.ensureVisible()
	return moved
}

// SelectHighlighted commits the highlight; false on an empty view
func (l *List) SelectHighlighted() bool {
	if l.highlighted < 0 {
		return false
	}
	l.selected = l.highlighted
	return true
}

// ResetHighlight moves the highlight back onto the committed selection
func (l *List) ResetHighlight() {
	l.highlighted = l.selected
	l.ensureVisible()
}

func (l *List) SetWrap(wrap bool) { l.wrap = wrap }

// SetDeferCommit makes navigation move only the highlight until SelectHighlighted
// Dropdowns use this; plain lists commit on every move
func (l *List) SetDeferCommit(deferCommit bool) {
	l.deferCommit = deferCommit
	if !deferCommit {
		l.selected = l.highlighted
	}
}

// --- marks ---

// ToggleMark flips the mark on an unfiltered index and returns the new state
func (l *List) ToggleMark(orig int) bool {
	if !l.validOriginal(orig) {
		return false
	}
	if l.marks.Contains(uint32(orig)) {
		l.marks.Remove(uint32(orig))
		return false
	}
	l.marks.Add(uint32(orig))
	return true
}

func (l *List) Mark(orig int) {
	if l.validOriginal(orig) {
		l.marks.Add(uint32(orig))
	}
}

func (l *List) Unmark(orig int) {
	if l.validOriginal(orig) {
		l.marks.Remove(uint32(orig))
	}
}

func (l *List) IsMarked(orig int) bool {
	return l.validOriginal(orig) && l.marks.Contains(uint32(orig))
}

// Marked returns marked unfiltered indices ascending
func (l *List) Marked() []int {
	arr := l.marks.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

func (l *List) MarkedCount() int {
	return int(l.marks.GetCardinality())
}

func (l *List) ClearMarks() {
	l.marks.Clear()
}

func (l *List) validOriginal(orig int) bool {
	return orig >= 0 && orig < len(l.items)
}

// --- filtering ---

// SetSearchEnabled turns filtering on or off; turning it off clears the filter
func (l *List) SetSearchEnabled(enabled bool) {
	l.searchEnabled = enabled
	if !enabled && l.filter != "" {
		l.ClearFilter()
	}
}

func (l *List) SearchEnabled() bool { return l.searchEnabled }

func (l *List) Filter() string { return l.filter }

// SetFilter narrows the view to items whose text contains q, ignoring case
// The selected and highlighted items stay put when still visible, otherwise reset to the first row
// Returns false when search is disabled
func (l *List) SetFilter(q string) bool {
	if !l.searchEnabled {
		return false
	}
	selOrig := l.OriginalIndex(l.selected)
	hiOrig := l.OriginalIndex(l.highlighted)

	l.filter = q
	l.refilter()

	n := len(l.filtered)
	l.selected = ClampCursor(0, n)
	if i := l.FilteredIndex(selOrig); i >= 0 {
		l.selected = i
	}
	l.highlighted = l.selected
	if i := l.FilteredIndex(hiOrig); i >= 0 && l.deferCommit {
		l.highlighted = i
	}
	l.firstVisible = ClampScroll(l.firstVisible, l.visibleCount, n)
	l.ensureVisible()
	return true
}

// ClearFilter restores every item in original order
func (l *List) ClearFilter() {
	enabled := l.searchEnabled
	l.searchEnabled = true
	l.SetFilter("")
	l.searchEnabled = enabled
}

func (l *List) refilter() {
	l.filtered = l.filtered[:0]
	needle := strings.ToLower(l.filter)
	for i, it := range l.items {
		if needle == "" || strings.Contains(strings.ToLower(it.Text), needle) {
			l.filtered = append(l.filtered, i)
		}
	}
}

// --- viewport ---

// SetVisibleCount sets the viewport height in rows, 0 shows everything
func (l *List) SetVisibleCount(n int) {
	l.visibleCount = max(n, 0)
	l.firstVisible = ClampScroll(l.firstVisible, l.visibleCount, len(l.filtered))
	l.ensureVisible()
}

func (l *List) VisibleCount() int { return l.visibleCount }

func (l *List) FirstVisible() int { return l.firstVisible }

// VisibleRange returns the half-open filtered range [start,end) in the viewport
func (l *List) VisibleRange() (start, end int) {
	n := len(l.filtered)
	if l.visibleCount == 0 {
		return 0, n
	}
	return l.firstVisible, min(l.firstVisible+l.visibleCount, n)
}

// ScrollPage moves the highlight a viewport down (dir > 0) or up (dir < 0), clamped to the ends
func (l *List) ScrollPage(dir int) bool {
	n := len(l.filtered)
	if n == 0 || dir == 0 {
		return false
	}
	page := l.visibleCount
	if page == 0 {
		page = n
	}
	target := l.highlighted + page
	if dir < 0 {
		target = l.highlighted - page
	}
	return l.moveHighlight(ClampCursor(target, n))
}

func (l *List) ensureVisible() {
	l.firstVisible = AdjustScroll(l.highlighted, l.firstVisible, l.visibleCount, len(l.filtered))
}

// --- matching ---

// FindNextMatch returns the first filtered position after the highlight whose text
// contains q ignoring case, wrapping once around the view; -1 when nothing matches
// The highlighted row itself is checked last
func (l *List) FindNextMatch(q string) int {
	n := len(l.filtered)
	if q == "" || n == 0 {
		return -1
	}
	needle := strings.ToLower(q)
	start := max(l.highlighted, -1)
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		if strings.Contains(strings.ToLower(l.items[l.filtered[i]].Text), needle) {
			return i
		}
	}
	return -1
}

// JumpToMatch highlights FindNextMatch(q) and reports whether one was found
func (l *List) JumpToMatch(q string) bool {
	i := l.FindNextMatch(q)
	if i < 0 {
		return false
	}
	l.moveHighlight(i)
	return true
}
