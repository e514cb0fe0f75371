package fsm

import "github.com/lixenwraith/tuikit/core"

// Registry attaches machines to entities
// It is owned by a single world and is not safe for concurrent use
type Registry struct {
	machines map[core.Entity]*Machine
}

func NewRegistry() *Registry {
	return &Registry{machines: make(map[core.Entity]*Machine)}
}

// Attach compiles cfg and binds a fresh machine to e, replacing any previous one
func (r *Registry) Attach(e core.Entity, cfg Config) error {
	t, err := Compile(cfg)
	if err != nil {
		return err
	}
	r.AttachTable(e, t)
	return nil
}

// AttachTable binds a machine over an already compiled table
func (r *Registry) AttachTable(e core.Entity, t *Table) *Machine {
	m := NewMachine(t)
	r.machines[e] = m
	return m
}

// Machine returns the machine bound to e
func (r *Registry) Machine(e core.Entity) (*Machine, bool) {
	m, ok := r.machines[e]
	return m, ok
}

// State returns e's current state, "" when no machine is attached
func (r *Registry) State(e core.Entity) string {
	if m, ok := r.machines[e]; ok {
		return m.State()
	}
	return ""
}

// Send dispatches event to e's machine and reports whether it transitioned
func (r *Registry) Send(e core.Entity, event string) bool {
	_, ok := r.Transition(e, event)
	return ok
}

// Transition is Send returning the applied change
func (r *Registry) Transition(e core.Entity, event string) (Change, bool) {
	m, ok := r.machines[e]
	if !ok {
		return Change{}, false
	}
	return m.Send(event)
}

func (r *Registry) Has(e core.Entity) bool {
	_, ok := r.machines[e]
	return ok
}

func (r *Registry) Detach(e core.Entity) {
	delete(r.machines, e)
}

// Count returns the number of attached machines
func (r *Registry) Count() int {
	return len(r.machines)
}

// Clear detaches every machine
func (r *Registry) Clear() {
	clear(r.machines)
}
