// Package interactive binds a state machine to a widget entity
//
// A Behavior owns the entity's machine in the world registry. Every applied
// transition marks the entity dirty and fires OnTransition; crossing into an
// open state fires OnOpen and crossing out of one fires OnClose. A disabled
// state accepts only EventEnable, whatever its table says.
package interactive

import (
	"fmt"

	"github.com/lixenwraith/tuikit/core"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/event"
)

// Spec describes a widget family's machine
type Spec struct {
	Name     string
	Table    *fsm.Table
	Open     []string // states that count as open
	Disabled []string // states that reject everything but EventEnable
}

// Behavior is the per-entity machine wrapper
type Behavior struct {
	world    *engine.World
	entity   core.Entity
	name     string
	open     map[string]bool
	disabled map[string]bool

	OnTransition event.Hooks[fsm.Change]
	OnOpen       event.Hooks[fsm.Change]
	OnClose      event.Hooks[fsm.Change]
}

// Attach binds a fresh machine for spec to e
func Attach(w *engine.World, e core.Entity, spec Spec) (*Behavior, error) {
	if !w.Alive(e) {
		return nil, engine.ErrStaleEntity
	}
	if spec.Table == nil {
		return nil, fmt.Errorf("interactive: %s: nil table", spec.Name)
	}
	w.FSM.AttachTable(e, spec.Table)

	b := &Behavior{
		world:    w,
		entity:   e,
		name:     spec.Name,
		open:     make(map[string]bool, len(spec.Open)),
		disabled: make(map[string]bool, len(spec.Disabled)),
	}
	for _, s := range spec.Open {
		b.open[s] = true
	}
	for _, s := range spec.Disabled {
		b.disabled[s] = true
	}
	return b, nil
}

func (b *Behavior) Entity() core.Entity { return b.entity }

// State returns the current state, "" once detached
func (b *Behavior) State() string {
	return b.world.FSM.State(b.entity)
}

func (b *Behavior) IsOpen() bool {
	return b.open[b.State()]
}

func (b *Behavior) IsDisabled() bool {
	return b.disabled[b.State()]
}

// Can reports whether Send(ev) would transition
func (b *Behavior) Can(ev string) bool {
	m, ok := b.world.FSM.Machine(b.entity)
	if !ok {
		return false
	}
	if b.disabled[m.State()] && ev != EventEnable {
		return false
	}
	return m.Can(ev)
}

// Send dispatches ev and reports whether the state changed
func (b *Behavior) Send(ev string) bool {
	if b.disabled[b.State()] && ev != EventEnable {
		b.world.Log.Debug(b.name + ": " + ev + " rejected while disabled")
		return false
	}
	ch, ok := b.world.FSM.Transition(b.entity, ev)
	if !ok {
		return false
	}
	b.apply(ch)
	return true
}

// Force moves to state without a table row, with the usual side effects
func (b *Behavior) Force(state string) bool {
	m, ok := b.world.FSM.Machine(b.entity)
	if !ok {
		return false
	}
	ch, ok := m.Force(state)
	if !ok {
		return false
	}
	b.apply(ch)
	return true
}

func (b *Behavior) apply(ch fsm.Change) {
	b.world.MarkDirty(b.entity)
	b.world.Notify(b.entity, event.Transition, ch.From+"->"+ch.To)
	b.OnTransition.Fire(ch)

	wasOpen, isOpen := b.open[ch.From], b.open[ch.To]
	switch {
	case !wasOpen && isOpen:
		b.world.Notify(b.entity, event.Open, "")
		b.OnOpen.Fire(ch)
	case wasOpen && !isOpen:
		b.world.Notify(b.entity, event.Close, "")
		b.OnClose.Fire(ch)
	}
}

// Detach drops the machine and every hook
func (b *Behavior) Detach() {
	b.world.FSM.Detach(b.entity)
	b.OnTransition.Clear()
	b.OnOpen.Clear()
	b.OnClose.Clear()
}
