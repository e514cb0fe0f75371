package engine

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/core"
)

// EntityBuilder assembles a widget entity's base components
//
//	e := world.NewEntity().
//	    At(2, 1).
//	    Size(20, 1).
//	    Layer(component.ZIndexWidget).
//	    Visible().
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity reserves a handle and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{world: w, entity: w.CreateEntity()}
}

func (eb *EntityBuilder) check() {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
}

func (eb *EntityBuilder) At(x, y int) *EntityBuilder {
	eb.check()
	eb.world.SetPosition(eb.entity, x, y)
	return eb
}

func (eb *EntityBuilder) Size(width, height int) *EntityBuilder {
	eb.check()
	eb.world.SetDimension(eb.entity, width, height)
	return eb
}

func (eb *EntityBuilder) Layer(z int) *EntityBuilder {
	eb.check()
	eb.world.SetLayer(eb.entity, z)
	return eb
}

func (eb *EntityBuilder) Style(s component.StyleComponent) *EntityBuilder {
	eb.check()
	eb.world.SetStyle(eb.entity, s)
	return eb
}

func (eb *EntityBuilder) Visible() *EntityBuilder {
	eb.check()
	eb.world.SetVisible(eb.entity, true)
	return eb
}

// With adds a component of type T to the entity being built
func With[T any](eb *EntityBuilder, store *Store[T], val T) *EntityBuilder {
	eb.check()
	store.Set(eb.entity, val)
	return eb
}

// Build finalizes construction and returns the handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.check()
	eb.built = true
	eb.world.MarkDirty(eb.entity)
	return eb.entity
}

// Discard destroys a partially built entity
func (eb *EntityBuilder) Discard() {
	if eb.built {
		return
	}
	eb.built = true
	_ = eb.world.DestroyEntity(eb.entity)
}
