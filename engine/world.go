// Package engine is the entity world widgets live in
//
// A World owns entity handles, the shared component stores, per-widget side
// stores, the state machine registry and the notice queue. Everything is
// scoped to the World; there are no package-level stores.
package engine

import (
	"errors"
	"reflect"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/core"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/logger"
)

// ErrStaleEntity is returned for handles that were never issued or were destroyed
var ErrStaleEntity = errors.New("engine: stale entity")

// Options configures a World; the zero value is usable
type Options struct {
	Logger          *logger.Logger
	Theme           *config.Theme
	NoticeQueueSize int
}

// World contains all entities and their components using typed stores
type World struct {
	generations []uint32 // per slot, odd = live
	free        []uint32
	live        int

	Positions  *Store[component.PositionComponent]
	Dimensions *Store[component.DimensionComponent]
	Layers     *Store[component.LayerComponent]
	Contents   *Store[component.ContentComponent]
	Styles     *Store[component.StyleComponent]
	Visibles   *Store[component.VisibleComponent]
	Dirties    *Store[component.DirtyComponent]

	FSM     *fsm.Registry
	Notices *event.Queue[event.Notice]
	Theme   config.Theme
	Log     *logger.Logger

	// OnDestroy fires before an entity's stores are cleared
	OnDestroy event.Hooks[core.Entity]

	allStores  []AnyStore
	sideStores map[reflect.Type]AnyStore
}

func NewWorld(opts Options) *World {
	w := &World{
		Positions:  NewStore[component.PositionComponent](),
		Dimensions: NewStore[component.DimensionComponent](),
		Layers:     NewStore[component.LayerComponent](),
		Contents:   NewStore[component.ContentComponent](),
		Styles:     NewStore[component.StyleComponent](),
		Visibles:   NewStore[component.VisibleComponent](),
		Dirties:    NewStore[component.DirtyComponent](),
		FSM:        fsm.NewRegistry(),
		Notices:    event.NewQueue[event.Notice](opts.NoticeQueueSize),
		Theme:      config.DefaultTheme(),
		Log:        opts.Logger,
		sideStores: make(map[reflect.Type]AnyStore),
	}
	if opts.Theme != nil {
		w.Theme = *opts.Theme
	}
	if w.Log == nil {
		w.Log = logger.Nop()
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Dimensions,
		w.Layers,
		w.Contents,
		w.Styles,
		w.Visibles,
		w.Dirties,
	}
	return w
}

// CreateEntity issues a handle, reusing a freed slot with a bumped generation
func (w *World) CreateEntity() core.Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
	}
	w.generations[idx]++
	w.live++
	return core.MakeEntity(idx, w.generations[idx])
}

// Alive reports whether e is a live handle issued by this world
func (w *World) Alive(e core.Entity) bool {
	idx := e.Index()
	if int(idx) >= len(w.generations) {
		return false
	}
	g := w.generations[idx]
	return g%2 == 1 && g == e.Generation()
}

// DestroyEntity removes e from every store, side store and the state machine registry
func (w *World) DestroyEntity(e core.Entity) error {
	if !w.Alive(e) {
		return ErrStaleEntity
	}
	w.OnDestroy.Fire(e)
	for _, store := range w.allStores {
		store.Remove(e)
	}
	w.FSM.Detach(e)

	idx := e.Index()
	w.generations[idx]++
	w.free = append(w.free, idx)
	w.live--
	return nil
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.live
}

// Clear destroys every entity; handles issued before Clear become stale
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
	w.FSM.Clear()
	w.free = w.free[:0]
	for i := range w.generations {
		if w.generations[i]%2 == 1 {
			w.generations[i]++
		}
		w.free = append(w.free, uint32(i))
	}
	w.live = 0
	w.Notices.Consume()
}

// register adds a store to lifecycle management
func (w *World) register(s AnyStore) {
	w.allStores = append(w.allStores, s)
}

// SideStore returns the world's store for widget state of type T, creating it on first use
// Side stores are cleared on destroy like the shared stores
func SideStore[T any](w *World) *Store[T] {
	key := reflect.TypeFor[T]()
	if s, ok := w.sideStores[key]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.sideStores[key] = s
	w.register(s)
	return s
}

// Notify queues a widget notice for the host
func (w *World) Notify(e core.Entity, t event.Type, detail string) {
	w.Notices.Push(event.Notice{Entity: e, Type: t, Detail: detail})
}
