package interactive

import (
	_ "embed"

	"github.com/lixenwraith/tuikit/engine/fsm"
)

//go:embed checkbox.toml
var checkboxTOML []byte

func mustLoad(data []byte) *fsm.Table {
	t, err := fsm.LoadTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Event names shared by every widget table
const (
	EventOpen    = "open"
	EventClose   = "close"
	EventToggle  = "toggle"
	EventSelect  = "select"
	EventFocus   = "focus"
	EventBlur    = "blur"
	EventSearch  = "search"
	EventDisable = "disable"
	EventEnable  = "enable"
	EventConfirm = "confirm"
	EventCancel  = "cancel"
	EventShow    = "show"
	EventHide    = "hide"
)

// State names
const (
	StateClosed    = "closed"
	StateOpen      = "open"
	StateIdle      = "idle"
	StateFocused   = "focused"
	StateSearching = "searching"
	StateDisabled  = "disabled"
	StateUnchecked = "unchecked"
	StateChecked   = "checked"
	StateHidden    = "hidden"
	StateVisible   = "visible"
)

// Select: closed|open|disabled
var Select = Spec{
	Name: "select",
	Table: fsm.NewBuilder(StateClosed).
		On(StateClosed, EventOpen, StateOpen).
		On(StateClosed, EventToggle, StateOpen).
		On(StateOpen, EventClose, StateClosed).
		On(StateOpen, EventToggle, StateClosed).
		On(StateOpen, EventSelect, StateClosed).
		On(StateOpen, EventCancel, StateClosed).
		On(fsm.Wildcard, EventDisable, StateDisabled).
		On(StateDisabled, EventEnable, StateClosed).
		MustCompile(),
	Open:     []string{StateOpen},
	Disabled: []string{StateDisabled},
}

// List: idle|focused|disabled, used by list, listbar, list table and radio group
var List = Spec{
	Name: "list",
	Table: fsm.NewBuilder(StateIdle).
		On(StateIdle, EventFocus, StateFocused).
		On(StateFocused, EventBlur, StateIdle).
		On(fsm.Wildcard, EventDisable, StateDisabled).
		On(StateDisabled, EventEnable, StateIdle).
		MustCompile(),
	Open:     []string{StateFocused},
	Disabled: []string{StateDisabled},
}

// SearchableList: idle|focused|searching|disabled
var SearchableList = Spec{
	Name: "searchable-list",
	Table: fsm.NewBuilder(StateIdle).
		On(StateIdle, EventFocus, StateFocused).
		On(StateFocused, EventBlur, StateIdle).
		On(StateFocused, EventSearch, StateSearching).
		On(StateSearching, EventConfirm, StateFocused).
		On(StateSearching, EventCancel, StateFocused).
		On(StateSearching, EventBlur, StateIdle).
		On(fsm.Wildcard, EventDisable, StateDisabled).
		On(StateDisabled, EventEnable, StateIdle).
		MustCompile(),
	Open:     []string{StateSearching},
	Disabled: []string{StateDisabled},
}

// Checkbox: unchecked|checked|disabled
// Enabling returns to unchecked; the widget restores the checked flag itself
var Checkbox = Spec{
	Name:     "checkbox",
	Table:    mustLoad(checkboxTOML),
	Disabled: []string{StateDisabled},
}

// Question: hidden|visible
var Question = Spec{
	Name: "question",
	Table: fsm.NewBuilder(StateHidden).
		On(StateHidden, EventShow, StateVisible).
		On(StateVisible, EventConfirm, StateHidden).
		On(StateVisible, EventCancel, StateHidden).
		On(StateVisible, EventHide, StateHidden).
		MustCompile(),
	Open: []string{StateVisible},
}
