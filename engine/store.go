package engine

import "github.com/lixenwraith/tuikit/core"

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, dense slice for iteration
// Not safe for concurrent use; a world is driven from one goroutine
type Store[T any] struct {
	components map[core.Entity]T
	dense      map[core.Entity]int // entity -> index in entities
	entities   []core.Entity
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		dense:      make(map[core.Entity]int),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates the component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.dense[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Update applies fn to an existing component and reports whether one existed
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove deletes the component, swapping the last entity into its dense slot
func (s *Store[T]) Remove(e core.Entity) {
	idx, exists := s.dense[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[idx] = moved
	s.dense[moved] = idx
	s.entities = s.entities[:last]
	delete(s.dense, e)
	delete(s.components, e)
}

func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of the entities holding this component
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

func (s *Store[T]) Count() int {
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	clear(s.components)
	clear(s.dense)
	s.entities = s.entities[:0]
}
