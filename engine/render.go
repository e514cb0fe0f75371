package engine

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/core"
)

// Frame is one entity's draw request
type Frame struct {
	Entity        core.Entity
	X, Y          int
	Width, Height int // 0 = unbounded
	Text          string
	Style         component.StyleComponent
}

// Sink receives composed content; it must not retain Frame.Text beyond the call
type Sink interface {
	DrawFrame(f Frame)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Frame)

func (fn SinkFunc) DrawFrame(f Frame) { fn(f) }

// Render draws every visible entity with content in layer order and clears dirty flags
func (w *World) Render(sink Sink) int {
	return w.draw(sink, false)
}

// Flush draws only visible entities marked dirty, then clears dirty flags
func (w *World) Flush(sink Sink) int {
	return w.draw(sink, true)
}

func (w *World) draw(sink Sink, dirtyOnly bool) int {
	q := w.Query().With(w.Visibles).With(w.Contents)
	if dirtyOnly {
		q = q.With(w.Dirties)
	}
	entities := q.Execute()
	w.SortByLayer(entities)

	for _, e := range entities {
		pos, _ := w.Positions.Get(e)
		dim, _ := w.Dimensions.Get(e)
		sink.DrawFrame(Frame{
			Entity: e,
			X:      pos.X,
			Y:      pos.Y,
			Width:  dim.Width,
			Height: dim.Height,
			Text:   w.Content(e),
			Style:  w.Style(e),
		})
	}
	w.Dirties.Clear()
	return len(entities)
}

// NeedsRedraw reports whether any entity is dirty
func (w *World) NeedsRedraw() bool {
	return w.Dirties.Count() > 0
}
