package engine

import (
	"sort"

	"github.com/lixenwraith/tuikit/core"
)

// QueryBuilder intersects component stores
// The query starts from the smallest store and filters through the larger ones
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
//	entities := world.Query().
//	    With(world.Visibles).
//	    With(world.Contents).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With adds a store to the intersection
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns every entity present in all stores; repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}
	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// All() returns a copy, so filtering in place is safe
	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
