package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/core"
)

func collect(frames *[]Frame) Sink {
	return SinkFunc(func(f Frame) { *frames = append(*frames, f) })
}

func TestRenderOrdersByLayer(t *testing.T) {
	w := NewWorld(Options{})
	popup := w.NewEntity().At(0, 0).Size(3, 1).Layer(component.ZIndexPopup).Visible().Build()
	base := w.NewEntity().At(0, 0).Size(5, 2).Layer(component.ZIndexWidget).Visible().Build()
	hidden := w.NewEntity().At(0, 0).Build()
	w.SetContent(popup, "top")
	w.SetContent(base, "aaaaa\nbbbbb")
	w.SetContent(hidden, "no")

	var frames []Frame
	n := w.Render(collect(&frames))
	require.Equal(t, 2, n)
	assert.Equal(t, base, frames[0].Entity)
	assert.Equal(t, popup, frames[1].Entity)
	assert.Equal(t, Frame{Entity: base, Width: 5, Height: 2, Text: "aaaaa\nbbbbb"}, frames[0])
	assert.False(t, w.NeedsRedraw())
}

func TestFlushDrawsOnlyDirty(t *testing.T) {
	w := NewWorld(Options{})
	a := w.NewEntity().Visible().Build()
	b := w.NewEntity().Visible().Build()
	w.SetContent(a, "a")
	w.SetContent(b, "b")

	var frames []Frame
	assert.Equal(t, 2, w.Flush(collect(&frames)))
	assert.Equal(t, 0, w.Flush(collect(&frames)))

	w.SetContent(b, "b2")
	frames = nil
	assert.Equal(t, 1, w.Flush(collect(&frames)))
	assert.Equal(t, "b2", frames[0].Text)

	w.SetVisible(b, false)
	assert.True(t, w.NeedsRedraw())
	assert.Equal(t, 0, w.Flush(collect(&frames)))
}

func TestTopAt(t *testing.T) {
	w := NewWorld(Options{})
	base := w.NewEntity().At(0, 0).Size(10, 5).Layer(component.ZIndexWidget).Visible().Build()
	popup := w.NewEntity().At(2, 1).Size(3, 2).Layer(component.ZIndexPopup).Visible().Build()

	assert.Equal(t, popup, w.TopAt(3, 2))
	assert.Equal(t, base, w.TopAt(0, 0))
	assert.Equal(t, core.NoEntity, w.TopAt(20, 20))

	w.SetVisible(popup, false)
	assert.Equal(t, base, w.TopAt(3, 2))
}
