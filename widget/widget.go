// Package widget builds widgets as entities in an engine.World
//
// Every factory validates its options, creates one entity with position,
// size, layer, style and visibility, keeps the widget's own state in a
// world side store keyed by the entity, and renders initial content.
// Setters re-render. A handle whose entity was destroyed ignores every call.
//
// Interactive widgets add a state machine (package interactive), a pure key
// mapper returning an Action, and Dispatch to execute an Action.
package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/core"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/logger"
)

// Bell gives audible feedback on rejected actions
type Bell interface {
	Ring()
}

// Bounds places a widget; Width and Height are in cells
type Bounds struct {
	X      int `validate:"gte=0"`
	Y      int `validate:"gte=0"`
	Width  int `validate:"gte=1"`
	Height int `validate:"gte=1"`
}

// base is embedded by every widget handle
type base struct {
	world  *engine.World
	entity core.Entity
	kind   string
	bell   Bell
	log    *logger.Logger
	render func()
}

// validateOptions rejects a nil world or invalid options before any entity exists
func validateOptions(w *engine.World, kind string, opts any) error {
	if w == nil {
		return config.NewValidationError("world", kind+": world is required", nil)
	}
	if err := config.Validate(opts); err != nil {
		w.Log.With("widget", kind).Error(err, "invalid options")
		return err
	}
	return nil
}

// validationFailure is for constraints a struct tag cannot express
func validationFailure(field, message string) error {
	return config.NewValidationError(field, message, nil)
}

func newBase(w *engine.World, kind string, b Bounds, z int, bell Bell) base {
	e := w.NewEntity().
		At(b.X, b.Y).
		Size(b.Width, b.Height).
		Layer(z).
		Style(component.StyleComponent{Fg: w.Theme.Foreground, Bg: w.Theme.Background}).
		Visible().
		Build()
	return base{
		world:  w,
		entity: e,
		kind:   kind,
		bell:   bell,
		log:    w.Log.With("widget", kind),
	}
}

// sideState returns the entity's T state, false once the entity is gone
func sideState[T any](b *base) (*T, bool) {
	return engine.SideStore[*T](b.world).Get(b.entity)
}

func attachState[T any](b *base, st *T) {
	engine.SideStore[*T](b.world).Set(b.entity, st)
}

// mutate applies fn to the widget state and re-renders
func mutate[T any](b *base, fn func(*T)) {
	st, ok := sideState[T](b)
	if !ok {
		return
	}
	fn(st)
	b.redraw()
}

func (b *base) Entity() core.Entity { return b.entity }

func (b *base) Alive() bool { return b.world.Alive(b.entity) }

// Size returns the widget's cell dimensions
func (b *base) Size() (width, height int) {
	d, _ := b.world.Dimensions.Get(b.entity)
	return d.Width, d.Height
}

// Position returns the top-left cell
func (b *base) Position() (x, y int) {
	p, _ := b.world.Positions.Get(b.entity)
	return p.X, p.Y
}

func (b *base) Move(x, y int) {
	b.world.SetPosition(b.entity, x, y)
}

// Resize changes the cell dimensions and recomposes content to fit
func (b *base) Resize(width, height int) {
	if !b.Alive() {
		return
	}
	b.world.SetDimension(b.entity, width, height)
	b.redraw()
}

func (b *base) SetVisible(visible bool) {
	b.world.SetVisible(b.entity, visible)
}

// Destroy removes the entity with its components, side state and machine
func (b *base) Destroy() error {
	return b.world.DestroyEntity(b.entity)
}

func (b *base) redraw() {
	if b.render != nil && b.Alive() {
		b.render()
	}
}

// reject reports an action the widget could not perform
func (b *base) reject(a Action) {
	if !b.Alive() {
		return
	}
	b.log.Debug("rejected " + a.String())
	b.world.Notify(b.entity, event.Rejected, a.String())
	if b.bell != nil {
		b.bell.Ring()
	}
}

// setFocusStyle swaps between the theme's focus colors and its defaults
func (b *base) setFocusStyle(focused bool) {
	st := b.world.Style(b.entity)
	t := b.world.Theme
	if focused {
		st.Fg, st.Bg = t.FocusForeground, t.FocusBackground
	} else {
		st.Fg, st.Bg = t.Foreground, t.Background
	}
	b.world.SetStyle(b.entity, st)
}

// setForeground keeps the background and attributes
func (b *base) setForeground(fg color.Packed) {
	st := b.world.Style(b.entity)
	st.Fg = fg
	b.world.SetStyle(b.entity, st)
}

// fitCell truncates or pads s to exactly width display cells
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// block joins rows fitted to width, padding or cutting to height rows
func block(rows []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, height)
	for i := range out {
		if i < len(rows) {
			out[i] = fitCell(rows[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}
