package widget

import "fmt"

// ActionKind tags a semantic widget action
type ActionKind uint8

const (
	ActionOpen ActionKind = iota
	ActionClose
	ActionFocus
	ActionBlur
	ActionHighlightNext
	ActionHighlightPrev
	ActionHighlightFirst
	ActionHighlightLast
	ActionSelectHighlighted
	ActionToggleMark
	ActionToggle
	ActionPageUp
	ActionPageDown
	ActionStartSearch
	ActionInsertRune
	ActionDeleteRune
	ActionCancel
	ActionConfirm
	ActionJump
)

var actionNames = [...]string{
	ActionOpen:              "open",
	ActionClose:             "close",
	ActionFocus:             "focus",
	ActionBlur:              "blur",
	ActionHighlightNext:     "highlight-next",
	ActionHighlightPrev:     "highlight-prev",
	ActionHighlightFirst:    "highlight-first",
	ActionHighlightLast:     "highlight-last",
	ActionSelectHighlighted: "select-highlighted",
	ActionToggleMark:        "toggle-mark",
	ActionToggle:            "toggle",
	ActionPageUp:            "page-up",
	ActionPageDown:          "page-down",
	ActionStartSearch:       "start-search",
	ActionInsertRune:        "insert-rune",
	ActionDeleteRune:        "delete-rune",
	ActionCancel:            "cancel",
	ActionConfirm:           "confirm",
	ActionJump:              "jump",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is what a key press means to a widget
// Rune is set for ActionJump and ActionInsertRune only
type Action struct {
	Kind ActionKind
	Rune rune
}

func act(k ActionKind) Action { return Action{Kind: k} }

func (a Action) String() string {
	switch a.Kind {
	case ActionJump, ActionInsertRune:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Rune)
	default:
		return a.Kind.String()
	}
}
