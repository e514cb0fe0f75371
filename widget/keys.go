package widget

import (
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/tuikit/widget/interactive"
)

// Key names understood by the mappers; printable keys are the character itself
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyEnter     = "enter"
	KeyEscape    = "escape"
	KeySpace     = "space"
	KeyTab       = "tab"
	KeyBacktab   = "backtab"
	KeyBackspace = "backspace"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "pageup"
	KeyPageDown  = "pagedown"
)

// printable returns the rune of a single printable character key
func printable(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// verticalNav covers arrow, vim and paging keys of vertical lists
func verticalNav(key string) (Action, bool) {
	switch key {
	case KeyUp, "k":
		return act(ActionHighlightPrev), true
	case KeyDown, "j":
		return act(ActionHighlightNext), true
	case KeyHome, "g":
		return act(ActionHighlightFirst), true
	case KeyEnd, "G":
		return act(ActionHighlightLast), true
	case KeyPageUp:
		return act(ActionPageUp), true
	case KeyPageDown:
		return act(ActionPageDown), true
	}
	return Action{}, false
}

func jump(key string) (Action, bool) {
	if r, ok := printable(key); ok {
		return Action{Kind: ActionJump, Rune: r}, true
	}
	return Action{}, false
}

// HandleSelectKey maps a key for a dropdown in state
// Closed: enter, space and the arrows open it, a letter jumps the selection.
// Open: navigation moves the highlight, enter or space commits, escape cancels.
func HandleSelectKey(state, key string) (Action, bool) {
	switch state {
	case interactive.StateClosed:
		switch key {
		case KeyEnter, KeySpace, KeyDown, KeyUp:
			return act(ActionOpen), true
		}
		return jump(key)
	case interactive.StateOpen:
		if a, ok := verticalNav(key); ok {
			return a, true
		}
		switch key {
		case KeyEnter, KeySpace:
			return act(ActionSelectHighlighted), true
		case KeyEscape:
			return act(ActionCancel), true
		case KeyTab:
			return act(ActionClose), true
		}
		return jump(key)
	}
	return Action{}, false
}

// HandleListKey maps a key for a vertical list in state
func HandleListKey(state, key string) (Action, bool) {
	switch state {
	case interactive.StateIdle:
		switch key {
		case KeyEnter, KeySpace:
			return act(ActionFocus), true
		}
	case interactive.StateFocused:
		if a, ok := verticalNav(key); ok {
			return a, true
		}
		switch key {
		case KeyEnter:
			return act(ActionSelectHighlighted), true
		case KeySpace:
			return act(ActionToggleMark), true
		case KeyEscape:
			return act(ActionBlur), true
		}
		return jump(key)
	}
	return Action{}, false
}

// HandleListbarKey maps a key for a horizontal list in state
// Digits and letters jump; the widget resolves a digit to a position.
func HandleListbarKey(state, key string) (Action, bool) {
	switch state {
	case interactive.StateIdle:
		switch key {
		case KeyEnter, KeySpace:
			return act(ActionFocus), true
		}
	case interactive.StateFocused:
		switch key {
		case KeyLeft, "h", KeyBacktab:
			return act(ActionHighlightPrev), true
		case KeyRight, "l", KeyTab:
			return act(ActionHighlightNext), true
		case KeyHome:
			return act(ActionHighlightFirst), true
		case KeyEnd:
			return act(ActionHighlightLast), true
		case KeyEnter, KeySpace:
			return act(ActionSelectHighlighted), true
		case KeyEscape:
			return act(ActionBlur), true
		}
		return jump(key)
	}
	return Action{}, false
}

// HandleSearchableListKey maps a key for a filterable list in state
// While searching every printable key, vim letters included, edits the query.
func HandleSearchableListKey(state, key string) (Action, bool) {
	switch state {
	case interactive.StateFocused:
		if key == "/" {
			return act(ActionStartSearch), true
		}
		return HandleListKey(state, key)
	case interactive.StateSearching:
		switch key {
		case KeyEscape:
			return act(ActionCancel), true
		case KeyEnter:
			return act(ActionConfirm), true
		case KeyBackspace:
			return act(ActionDeleteRune), true
		case KeyUp:
			return act(ActionHighlightPrev), true
		case KeyDown:
			return act(ActionHighlightNext), true
		case KeySpace:
			return Action{Kind: ActionInsertRune, Rune: ' '}, true
		}
		if r, ok := printable(key); ok {
			return Action{Kind: ActionInsertRune, Rune: r}, true
		}
	default:
		return HandleListKey(state, key)
	}
	return Action{}, false
}

// HandleQuestionKey maps a key for a yes/no prompt in state
// Enter presses whichever button has focus.
func HandleQuestionKey(state, key string) (Action, bool) {
	if state != interactive.StateVisible {
		return Action{}, false
	}
	switch key {
	case "y", "Y":
		return act(ActionConfirm), true
	case "n", "N", KeyEscape:
		return act(ActionCancel), true
	case KeyEnter, KeySpace:
		return act(ActionSelectHighlighted), true
	case KeyLeft, "h", KeyBacktab:
		return act(ActionHighlightPrev), true
	case KeyRight, "l", KeyTab:
		return act(ActionHighlightNext), true
	}
	return Action{}, false
}

// HandleCheckboxKey maps a key for a checkbox in state
func HandleCheckboxKey(state, key string) (Action, bool) {
	switch state {
	case interactive.StateUnchecked, interactive.StateChecked:
		switch key {
		case KeyEnter, KeySpace:
			return act(ActionToggle), true
		}
	}
	return Action{}, false
}
