package engine

import "github.com/lixenwraith/tuikit/core"

// AnyStore provides type-erased operations for lifecycle management
// World uses it to drop a destroyed entity from every store without knowing the type
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore adds the iteration the query builder intersects on
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
