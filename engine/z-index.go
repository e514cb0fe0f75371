package engine

import (
	"sort"

	"github.com/lixenwraith/tuikit/core"
)

// ZIndex returns the draw layer of e, 0 when unset
func (w *World) ZIndex(e core.Entity) int {
	l, _ := w.Layers.Get(e)
	return l.Z
}

// SortByLayer orders entities bottom to top
// Ties keep creation slot order so frames are stable
func (w *World) SortByLayer(entities []core.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		zi, zj := w.ZIndex(entities[i]), w.ZIndex(entities[j])
		if zi != zj {
			return zi < zj
		}
		return entities[i].Index() < entities[j].Index()
	})
}

// TopAt returns the highest visible entity covering cell (x,y), NoEntity if none
func (w *World) TopAt(x, y int) core.Entity {
	top := core.NoEntity
	topZ := 0
	for _, e := range w.Query().With(w.Visibles).With(w.Positions).With(w.Dimensions).Execute() {
		pos, _ := w.Positions.Get(e)
		dim, _ := w.Dimensions.Get(e)
		if !dim.Contains(pos, x, y) {
			continue
		}
		z := w.ZIndex(e)
		if top == core.NoEntity || z > topZ || (z == topZ && e.Index() > top.Index()) {
			top, topZ = e, z
		}
	}
	return top
}
