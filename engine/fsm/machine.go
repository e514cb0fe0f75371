package fsm

// Machine is one running instance of a Table
type Machine struct {
	table   *Table
	current StateID
}

// NewMachine starts a machine in the table's initial state
func NewMachine(t *Table) *Machine {
	return &Machine{table: t, current: t.initial}
}

// State returns the current state name
func (m *Machine) State() string {
	return m.table.nodes[m.current].Name
}

// Can reports whether event would change the state
func (m *Machine) Can(event string) bool {
	to, ok := m.table.Target(m.current, event)
	return ok && to != m.current
}

// Send applies event and reports the change
// A transition that targets the current state is not a change
func (m *Machine) Send(event string) (Change, bool) {
	to, ok := m.table.Target(m.current, event)
	if !ok || to == m.current {
		return Change{}, false
	}
	ch := Change{
		From:  m.table.nodes[m.current].Name,
		To:    m.table.nodes[to].Name,
		Event: event,
	}
	m.current = to
	return ch, true
}

// Force jumps to a named state without consulting the table
func (m *Machine) Force(state string) (Change, bool) {
	to, ok := m.table.index[state]
	if !ok || to == StateRoot || to == m.current {
		return Change{}, false
	}
	ch := Change{From: m.table.nodes[m.current].Name, To: state}
	m.current = to
	return ch, true
}

// Reset returns to the initial state
func (m *Machine) Reset() {
	m.current = m.table.initial
}

// Table returns the compiled table backing the machine
func (m *Machine) Table() *Table {
	return m.table
}
