package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = Items("Apple", "Apricot", "Banana", "Blueberry", "Cherry")

func texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestFilterAndRestore(t *testing.T) {
	l := NewList(fruit)

	require.True(t, l.SetFilter("ber"))
	assert.Equal(t, []string{"Blueberry"}, texts(l.Filtered()))
	assert.Equal(t, 3, l.OriginalIndex(0))

	l.ClearFilter()
	assert.Equal(t, []string{"Apple", "Apricot", "Banana", "Blueberry", "Cherry"}, texts(l.Filtered()))
	assert.Equal(t, "", l.Filter())
}

func TestFilterIsCaseInsensitiveAndOrdered(t *testing.T) {
	l := NewList(fruit)
	l.SetFilter("AP")
	assert.Equal(t, []string{"Apple", "Apricot"}, texts(l.Filtered()))
	l.SetFilter("an")
	assert.Equal(t, []string{"Banana"}, texts(l.Filtered()))
}

func TestFilterKeepsSelectedItem(t *testing.T) {
	l := NewList(fruit)
	l.Select(3) // Blueberry

	l.SetFilter("b")
	assert.Equal(t, []string{"Banana", "Blueberry"}, texts(l.Filtered()))
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, 3, l.OriginalSelected())

	// Excluded selection resets to the first row
	l.SetFilter("ch")
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 4, l.OriginalSelected())

	l.SetFilter("zzz")
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.Selected())
	assert.Equal(t, -1, l.Highlighted())
	assert.Equal(t, -1, l.OriginalSelected())
	_, ok := l.SelectedItem()
	assert.False(t, ok)

	l.ClearFilter()
	assert.Equal(t, 0, l.Selected())
}

func TestFilterSelectionInvariantUnderRandomQueries(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	queries := []string{"", "a", "b", "ber", "x", "APR", "e", "rr", "cherry"}
	l := NewList(fruit)
	l.SetVisibleCount(2)

	for step := 0; step < 500; step++ {
		switch rng.IntN(5) {
		case 0:
			l.ClearFilter()
		case 1:
			l.Select(rng.IntN(7) - 1)
		case 2:
			l.HighlightNext()
		default:
			l.SetFilter(queries[rng.IntN(len(queries))])
		}

		n := l.Len()
		sel := l.Selected()
		if n == 0 {
			require.Equal(t, -1, sel)
		} else {
			require.GreaterOrEqual(t, sel, 0)
			require.Less(t, sel, n)
		}
		orig := l.OriginalSelected()
		require.True(t, orig == -1 || (orig >= 0 && orig < l.Total()))
		if n > 0 {
			start, end := l.VisibleRange()
			require.GreaterOrEqual(t, sel, start)
			require.Less(t, sel, end)
		}
	}
}

func TestHighlightNavigation(t *testing.T) {
	l := NewList(fruit)
	assert.Equal(t, 0, l.Highlighted())

	assert.True(t, l.HighlightPrev())
	assert.Equal(t, 4, l.Highlighted(), "wraps to the end")
	assert.True(t, l.HighlightNext())
	assert.Equal(t, 0, l.Highlighted(), "wraps to the start")

	l.SetWrap(false)
	assert.False(t, l.HighlightPrev())
	assert.Equal(t, 0, l.Highlighted())
	l.HighlightLast()
	assert.False(t, l.HighlightNext())
	assert.Equal(t, 4, l.Highlighted())
	assert.True(t, l.HighlightFirst())

	l.SetHighlighted(99)
	assert.Equal(t, 4, l.Highlighted())
	l.SetHighlighted(-5)
	assert.Equal(t, 0, l.Highlighted())

	empty := NewList(nil)
	assert.False(t, empty.HighlightNext())
	assert.False(t, empty.HighlightPrev())
	assert.False(t, empty.HighlightFirst())
	assert.False(t, empty.HighlightLast())
	assert.False(t, empty.SelectHighlighted())
	empty.SetHighlighted(3)
	assert.Equal(t, -1, empty.Highlighted())
}

func TestDeferredCommit(t *testing.T) {
	l := NewList(fruit)
	l.SetDeferCommit(true)
	l.HighlightNext()
	l.HighlightNext()
	assert.Equal(t, 2, l.Highlighted())
	assert.Equal(t, 0, l.Selected())

	l.ResetHighlight()
	assert.Equal(t, 0, l.Highlighted())

	l.SetHighlighted(3)
	require.True(t, l.SelectHighlighted())
	assert.Equal(t, 3, l.Selected())
	it, _ := l.SelectedItem()
	assert.Equal(t, "Blueberry", it.Text)

	// Both survive a filter that keeps them
	l.SetHighlighted(1)
	l.SetFilter("r")
	assert.Equal(t, []string{"Apricot", "Blueberry", "Cherry"}, texts(l.Filtered()))
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, 0, l.Highlighted())

	l.SetDeferCommit(false)
	assert.Equal(t, 0, l.Selected())
}

func TestMarksUseOriginalIndices(t *testing.T) {
	l := NewList(fruit)
	assert.True(t, l.ToggleMark(3))
	l.Mark(0)
	l.Mark(0)
	l.Mark(42)
	assert.Equal(t, []int{0, 3}, l.Marked())
	assert.Equal(t, 2, l.MarkedCount())

	l.SetFilter("ber")
	assert.True(t, l.IsMarked(l.OriginalIndex(0)), "marks survive filtering")

	assert.False(t, l.ToggleMark(3))
	assert.False(t, l.ToggleMark(-1))
	l.Unmark(0)
	assert.Empty(t, l.Marked())

	l.Mark(1)
	l.ClearMarks()
	assert.Equal(t, 0, l.MarkedCount())

	l.Mark(2)
	l.SetItems(Items("x", "y", "z"))
	assert.Empty(t, l.Marked(), "new items drop marks")
	assert.Equal(t, "ber", l.Filter(), "new items keep the query")
	assert.Equal(t, 0, l.Len())
}

func TestSearchDisabled(t *testing.T) {
	l := NewList(fruit)
	l.SetFilter("ap")
	l.SetSearchEnabled(false)
	assert.False(t, l.SearchEnabled())
	assert.Equal(t, 5, l.Len(), "disabling search clears the filter")
	assert.False(t, l.SetFilter("ch"))
	assert.Equal(t, 5, l.Len())
}

func TestScrollPageMinimalScroll(t *testing.T) {
	l := NewList(Items("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	l.SetVisibleCount(3)
	assert.Equal(t, 0, l.FirstVisible())

	l.HighlightNext()
	assert.Equal(t, 0, l.FirstVisible(), "still inside the window")

	assert.True(t, l.ScrollPage(1))
	assert.Equal(t, 4, l.Selected())
	assert.Equal(t, 2, l.FirstVisible(), "snaps selection to the bottom edge")

	l.ScrollPage(1)
	l.ScrollPage(1)
	assert.Equal(t, 9, l.Selected(), "clamped to the end")
	assert.Equal(t, 7, l.FirstVisible())
	assert.False(t, l.ScrollPage(1))

	l.ScrollPage(-1)
	assert.Equal(t, 6, l.Selected())
	assert.Equal(t, 6, l.FirstVisible(), "snaps selection to the top edge")

	start, end := l.VisibleRange()
	assert.Equal(t, [2]int{6, 9}, [2]int{start, end})

	l.SetVisibleCount(0)
	start, end = l.VisibleRange()
	assert.Equal(t, [2]int{0, 10}, [2]int{start, end})
	l.ScrollPage(-1)
	assert.Equal(t, 0, l.Selected())
	assert.False(t, l.ScrollPage(0))
}

func TestFindNextMatch(t *testing.T) {
	l := NewList(fruit)
	assert.Equal(t, 1, l.FindNextMatch("ap"), "starts after the highlight")
	l.SetHighlighted(1)
	assert.Equal(t, 0, l.FindNextMatch("ap"), "wraps around")
	assert.Equal(t, 1, l.FindNextMatch("apricot"), "current row is checked last")
	assert.Equal(t, 3, l.FindNextMatch("BERRY"))
	assert.Equal(t, -1, l.FindNextMatch("kiwi"))
	assert.Equal(t, -1, l.FindNextMatch(""))

	assert.True(t, l.JumpToMatch("ch"))
	assert.Equal(t, 4, l.Highlighted())
	assert.False(t, l.JumpToMatch("kiwi"))
	assert.Equal(t, 4, l.Highlighted())
}

func TestIndexMapping(t *testing.T) {
	l := NewList(fruit)
	l.SetFilter("an")
	assert.Equal(t, 2, l.OriginalIndex(0))
	assert.Equal(t, -1, l.OriginalIndex(1))
	assert.Equal(t, 0, l.FilteredIndex(2))
	assert.Equal(t, -1, l.FilteredIndex(0))
	assert.Equal(t, 5, l.Total())
	assert.Len(t, l.Items(), 5)
	_, ok := l.Item(-1)
	assert.False(t, ok)
}

func TestScrollHelpers(t *testing.T) {
	assert.Equal(t, 0, AdjustScroll(5, 3, 10, 8))
	assert.Equal(t, 3, AdjustScroll(5, 0, 3, 10))
	assert.Equal(t, 2, AdjustScroll(2, 4, 3, 10))
	assert.Equal(t, 7, ClampScroll(20, 3, 10))
	assert.Equal(t, -1, ClampCursor(0, 0))
	assert.Equal(t, "All", ScrollIndicator(0, 5, 3))
	assert.Equal(t, "Top", ScrollIndicator(0, 3, 10))
	assert.Equal(t, "Bot", ScrollIndicator(7, 3, 10))
	assert.Equal(t, "42%", ScrollIndicator(3, 3, 10))
	assert.Equal(t, 100, ScrollPercent(9, 3, 10))
}
