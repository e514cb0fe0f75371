package fsm

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoInitialState      = errors.New("fsm: no initial state")
	ErrUnknownState        = errors.New("fsm: unknown state")
	ErrDuplicateTransition = errors.New("fsm: duplicate transition")
)

// Builder assembles a Config in code
type Builder struct {
	cfg Config
}

// NewBuilder starts a table whose machines begin in initial
func NewBuilder(initial string) *Builder {
	return &Builder{cfg: Config{Initial: initial}}
}

// On adds a from --event--> to row; from may be Wildcard
func (b *Builder) On(from, event, to string) *Builder {
	b.cfg.Transitions = append(b.cfg.Transitions, TransitionConfig{From: from, Event: event, To: to})
	return b
}

// Config returns a copy of the assembled config
func (b *Builder) Config() Config {
	out := b.cfg
	out.Transitions = append([]TransitionConfig(nil), b.cfg.Transitions...)
	return out
}

// Compile is Config followed by Compile
func (b *Builder) Compile() (*Table, error) {
	return Compile(b.Config())
}

// MustCompile panics on a bad table; for package-level tables only
func (b *Builder) MustCompile() *Table {
	t, err := b.Compile()
	if err != nil {
		panic(err)
	}
	return t
}

// Compile resolves state names and checks the table
// When States is set every referenced name must appear in it
func Compile(cfg Config) (*Table, error) {
	if cfg.Initial == "" {
		return nil, ErrNoInitialState
	}

	declared := make(map[string]bool, len(cfg.States))
	for _, s := range cfg.States {
		declared[s] = true
	}
	check := func(name string) error {
		if name == Wildcard || (len(declared) > 0 && !declared[name]) {
			return fmt.Errorf("%w: %q", ErrUnknownState, name)
		}
		return nil
	}

	if err := check(cfg.Initial); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	names := map[string]bool{cfg.Initial: true}
	for s := range declared {
		if s == Wildcard {
			return nil, fmt.Errorf("states: %w: %q", ErrUnknownState, s)
		}
		names[s] = true
	}
	for i, tr := range cfg.Transitions {
		if tr.From != Wildcard {
			if err := check(tr.From); err != nil {
				return nil, fmt.Errorf("transition %d: %w", i, err)
			}
			names[tr.From] = true
		}
		if err := check(tr.To); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		names[tr.To] = true
	}

	// Sort for deterministic IDs
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	t := &Table{
		nodes: make([]*Node, 0, len(sorted)+1),
		index: make(map[string]StateID, len(sorted)+1),
	}
	t.addNode(Wildcard)
	for _, n := range sorted {
		t.addNode(n)
	}
	t.initial = t.index[cfg.Initial]

	for i, tr := range cfg.Transitions {
		node := t.nodes[t.index[tr.From]]
		if _, dup := node.Transitions[tr.Event]; dup {
			return nil, fmt.Errorf("transition %d: %w: %s --%s-->", i, ErrDuplicateTransition, tr.From, tr.Event)
		}
		node.Transitions[tr.Event] = t.index[tr.To]
	}
	return t, nil
}

func (t *Table) addNode(name string) {
	id := StateID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{ID: id, Name: name, Transitions: make(map[string]StateID)})
	t.index[name] = id
}

// States returns the state names in ID order, the wildcard root excluded
func (t *Table) States() []string {
	out := make([]string, 0, len(t.nodes)-1)
	for _, n := range t.nodes[1:] {
		out = append(out, n.Name)
	}
	return out
}

// Initial returns the starting state name
func (t *Table) Initial() string {
	return t.nodes[t.initial].Name
}

// Target resolves an event from a state, bubbling to the wildcard root
func (t *Table) Target(from StateID, event string) (StateID, bool) {
	if from <= StateRoot || int(from) >= len(t.nodes) {
		return StateNone, false
	}
	if to, ok := t.nodes[from].Transitions[event]; ok {
		return to, true
	}
	if to, ok := t.nodes[StateRoot].Transitions[event]; ok {
		return to, true
	}
	return StateNone, false
}
