package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/core"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/logger"
)

type gaugeState struct{ value float64 }

func TestCreateDestroyReusesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld(Options{})
	a := w.CreateEntity()
	assert.NotEqual(t, core.NoEntity, a)
	assert.True(t, w.Alive(a))
	assert.Equal(t, 1, w.EntityCount())

	require.NoError(t, w.DestroyEntity(a))
	assert.False(t, w.Alive(a))
	assert.ErrorIs(t, w.DestroyEntity(a), ErrStaleEntity)
	assert.Equal(t, 0, w.EntityCount())

	b := w.CreateEntity()
	assert.Equal(t, a.Index(), b.Index())
	assert.NotEqual(t, a, b)
	assert.False(t, w.Alive(a))
	assert.True(t, w.Alive(b))

	assert.False(t, w.Alive(core.MakeEntity(99, 1)))
	assert.False(t, w.Alive(core.NoEntity))
}

func TestDestroyClearsSideStoresAndMachines(t *testing.T) {
	w := NewWorld(Options{})
	states := SideStore[gaugeState](w)
	assert.Same(t, states, SideStore[gaugeState](w))

	e := w.NewEntity().At(1, 2).Size(10, 1).Visible().Build()
	states.Set(e, gaugeState{value: 0.5})
	w.SetContent(e, "x")
	require.NoError(t, w.FSM.Attach(e, fsm.NewBuilder("idle").On("idle", "focus", "focused").Config()))

	var destroyed []core.Entity
	w.OnDestroy.Add(func(e core.Entity) { destroyed = append(destroyed, e) })

	require.NoError(t, w.DestroyEntity(e))
	assert.Equal(t, []core.Entity{e}, destroyed)
	assert.False(t, states.Has(e))
	assert.False(t, w.FSM.Has(e))
	assert.False(t, w.Positions.Has(e))
	assert.False(t, w.Contents.Has(e))
	assert.False(t, w.IsDirty(e))

	// The recycled handle starts clean
	f := w.CreateEntity()
	assert.Equal(t, e.Index(), f.Index())
	assert.False(t, states.Has(f))
	assert.Equal(t, "", w.FSM.State(f))
}

func TestSettersIgnoreStaleHandles(t *testing.T) {
	w := NewWorld(Options{})
	e := w.CreateEntity()
	require.NoError(t, w.DestroyEntity(e))

	w.SetContent(e, "ghost")
	w.SetPosition(e, 1, 1)
	w.SetVisible(e, true)
	w.SetStyle(e, component.StyleComponent{Fg: 1})
	w.MarkDirty(e)
	assert.Equal(t, 0, w.Contents.Count())
	assert.Equal(t, 0, w.Dirties.Count())
}

func TestSetContentMarksDirtyOnlyOnChange(t *testing.T) {
	w := NewWorld(Options{})
	e := w.CreateEntity()
	w.SetContent(e, "a")
	assert.True(t, w.IsDirty(e))
	w.Dirties.Clear()

	w.SetContent(e, "a")
	assert.False(t, w.IsDirty(e))
	w.SetContent(e, "b")
	assert.True(t, w.IsDirty(e))
	assert.Equal(t, "b", w.Content(e))

	w.SetDimension(e, -3, 2)
	d, _ := w.Dimensions.Get(e)
	assert.Equal(t, component.DimensionComponent{Width: 0, Height: 2}, d)
}

func TestClearInvalidatesHandles(t *testing.T) {
	w := NewWorld(Options{})
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.SetContent(a, "a")
	w.Notify(b, event.Open, "")

	w.Clear()
	assert.False(t, w.Alive(a))
	assert.False(t, w.Alive(b))
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.Notices.Len())

	c := w.CreateEntity()
	assert.True(t, w.Alive(c))
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestWorldOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)
	theme := config.Theme{Foreground: 0xFF010203}

	w := NewWorld(Options{Logger: log, Theme: &theme, NoticeQueueSize: 1})
	assert.Same(t, log, w.Log)
	assert.Equal(t, theme.Foreground, w.Theme.Foreground)

	e := w.CreateEntity()
	w.Notify(e, event.Open, "")
	w.Notify(e, event.Close, "")
	assert.Equal(t, []event.Notice{{Entity: e, Type: event.Close}}, w.Notices.Consume())

	assert.NotNil(t, NewWorld(Options{}).Log)
}

func TestEntityBuilder(t *testing.T) {
	w := NewWorld(Options{})
	labels := SideStore[string](w)

	eb := w.NewEntity().At(3, 4).Size(5, 1).Layer(component.ZIndexPopup).Style(component.StyleComponent{Attr: component.StyleBold})
	e := With(eb, labels, "hello").Visible().Build()

	pos, _ := w.Positions.Get(e)
	assert.Equal(t, component.PositionComponent{X: 3, Y: 4}, pos)
	assert.Equal(t, component.ZIndexPopup, w.ZIndex(e))
	assert.True(t, w.IsVisible(e))
	l, _ := labels.Get(e)
	assert.Equal(t, "hello", l)

	assert.Panics(t, func() { eb.At(0, 0) })

	d := w.NewEntity().At(0, 0)
	tmp := d.Build()
	assert.True(t, w.Alive(tmp))

	discard := w.NewEntity().Visible()
	discard.Discard()
	assert.Equal(t, 2, w.EntityCount())
}
