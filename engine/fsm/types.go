package fsm

// StateID indexes a compiled state
type StateID int

const (
	StateNone StateID = -1
	// StateRoot holds the wildcard transitions every state falls back to
	StateRoot StateID = 0
)

// Table is a compiled, immutable transition table
// One table is shared by every machine built from the same config
type Table struct {
	nodes   []*Node // index = StateID, nodes[StateRoot] is the wildcard root
	index   map[string]StateID
	initial StateID
}

// Node is a state in the table
// Event lookup checks the node first and then bubbles to the root
type Node struct {
	ID          StateID
	Name        string
	Transitions map[string]StateID // event -> target
}

// Change describes one applied transition
type Change struct {
	From  string
	To    string
	Event string
}
