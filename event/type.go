package event

import "github.com/lixenwraith/tuikit/core"

// Type identifies what a widget notice reports
type Type uint8

const (
	// Transition: a state machine changed state; Detail is "from->to"
	Transition Type = iota
	// Open and Close: a widget crossed its open boundary
	Open
	Close
	// Select: a selection was committed; Detail is the item text
	Select
	// Mark: a multi-select mark flipped; Detail is the item text
	Mark
	// Confirm and Cancel: a dialog was answered
	Confirm
	Cancel
	// Rejected: a key or action had no effect
	Rejected
)

func (t Type) String() string {
	switch t {
	case Transition:
		return "transition"
	case Open:
		return "open"
	case Close:
		return "close"
	case Select:
		return "select"
	case Mark:
		return "mark"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Notice is a widget event queued on the world for hosts to drain
type Notice struct {
	Entity core.Entity
	Type   Type
	Detail string
}
