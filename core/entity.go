package core

import "fmt"

// Entity is an opaque widget handle
// Low 32 bits hold the slot index, high 32 bits hold the slot generation
// A recycled slot gets a new generation so stale handles never alias a live widget
type Entity uint64

// NoEntity is never returned by a world
const NoEntity Entity = 0

// MakeEntity packs slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	if e == NoEntity {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
