package engine

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/core"
)

// Setters ignore stale handles; rendering paths never fail

func (w *World) SetPosition(e core.Entity, x, y int) {
	if !w.Alive(e) {
		return
	}
	w.Positions.Set(e, component.PositionComponent{X: x, Y: y})
	w.MarkDirty(e)
}

// SetDimension stores the footprint, negative sizes clamp to zero
func (w *World) SetDimension(e core.Entity, width, height int) {
	if !w.Alive(e) {
		return
	}
	w.Dimensions.Set(e, component.DimensionComponent{Width: max(width, 0), Height: max(height, 0)})
	w.MarkDirty(e)
}

func (w *World) SetLayer(e core.Entity, z int) {
	if !w.Alive(e) {
		return
	}
	w.Layers.Set(e, component.LayerComponent{Z: z})
	w.MarkDirty(e)
}

func (w *World) SetVisible(e core.Entity, visible bool) {
	if !w.Alive(e) {
		return
	}
	if visible {
		w.Visibles.Set(e, component.VisibleComponent{})
	} else {
		w.Visibles.Remove(e)
	}
	w.MarkDirty(e)
}

func (w *World) IsVisible(e core.Entity) bool {
	return w.Visibles.Has(e)
}

// SetContent stores the composed text verbatim and marks e dirty when it changed
func (w *World) SetContent(e core.Entity, text string) {
	if !w.Alive(e) {
		return
	}
	if cur, ok := w.Contents.Get(e); ok && cur.Text == text {
		return
	}
	w.Contents.Set(e, component.ContentComponent{Text: text})
	w.MarkDirty(e)
}

func (w *World) Content(e core.Entity) string {
	c, _ := w.Contents.Get(e)
	return c.Text
}

func (w *World) SetStyle(e core.Entity, s component.StyleComponent) {
	if !w.Alive(e) {
		return
	}
	if cur, ok := w.Styles.Get(e); ok && cur == s {
		return
	}
	w.Styles.Set(e, s)
	w.MarkDirty(e)
}

func (w *World) Style(e core.Entity) component.StyleComponent {
	s, _ := w.Styles.Get(e)
	return s
}

// MarkDirty schedules e for the next flush
func (w *World) MarkDirty(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	w.Dirties.Set(e, component.DirtyComponent{})
}

func (w *World) IsDirty(e core.Entity) bool {
	return w.Dirties.Has(e)
}
