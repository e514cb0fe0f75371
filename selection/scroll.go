package selection

// AdjustScroll returns the scroll offset that keeps cursor visible, moving it as little as possible
// A cursor above the window snaps to the top edge, one below snaps to the bottom edge
func AdjustScroll(cursor, scroll, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if cursor < scroll {
		scroll = cursor
	} else if cursor >= scroll+visible {
		scroll = cursor - visible + 1
	}
	return ClampScroll(scroll, visible, total)
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ClampCursor clamps cursor into [0,total-1], -1 for an empty list
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return -1
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ScrollPercent returns scroll position as 0-100 percentage
func ScrollPercent(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	pct := (scroll * 100) / (total - visible)
	return max(0, min(pct, 100))
}

// ScrollIndicator returns "All", "Top", "Bot" or a two digit percentage
func ScrollIndicator(scroll, visible, total int) string {
	switch {
	case visible <= 0 || total <= visible:
		return "All"
	case scroll <= 0:
		return "Top"
	case scroll+visible >= total:
		return "Bot"
	}
	pct := min(ScrollPercent(scroll, visible, total), 99)
	return string(rune('0'+pct/10)) + string(rune('0'+pct%10)) + "%"
}
