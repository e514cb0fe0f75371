package widget

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/selection"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

type RadioGroupOptions struct {
	Bounds
	Options  []string `validate:"min=1,dive,required"`
	Selected int      `validate:"gte=0"`
	Bell     Bell
}

// RadioGroup is a vertical list of options with exactly one chosen
// Moving the cursor does not change the choice; enter or space does.
type RadioGroup struct {
	*listCore
}

func NewRadioGroup(w *engine.World, opts RadioGroupOptions) (*RadioGroup, error) {
	if err := validateOptions(w, "radio", opts); err != nil {
		return nil, err
	}
	c, err := newListCore(w, listCoreOptions{
		kind:     "radio",
		bounds:   opts.Bounds,
		z:        component.ZIndexWidget,
		bell:     opts.Bell,
		spec:     interactive.List,
		items:    selection.Items(opts.Options...),
		selected: opts.Selected,
		visible:  opts.Height,
	})
	if err != nil {
		return nil, err
	}
	r := &RadioGroup{listCore: c}
	if m := r.model(); m != nil {
		m.SetSearchEnabled(false)
		m.SetDeferCommit(true)
	}
	r.render = r.compose
	r.focusStyling()
	r.redraw()
	return r, nil
}

func (r *RadioGroup) Focus() bool { return r.send(interactive.EventFocus) }

func (r *RadioGroup) Blur() bool { return r.send(interactive.EventBlur) }

// Value returns the chosen option text
func (r *RadioGroup) Value() string {
	item, ok := r.Selected()
	if !ok {
		return ""
	}
	return item.Text
}

func (r *RadioGroup) HandleKey(key string) (Action, bool) {
	a, ok := HandleListKey(r.State(), key)
	if !ok {
		return a, false
	}
	r.Dispatch(a)
	return a, true
}

// Dispatch executes a; space chooses like enter since a radio has no marks
func (r *RadioGroup) Dispatch(a Action) bool {
	if a.Kind == ActionToggleMark {
		a = act(ActionSelectHighlighted)
	}
	return r.dispatchList(a)
}

func (r *RadioGroup) compose() {
	m := r.model()
	if m == nil {
		return
	}
	w, h := r.Size()
	m.SetVisibleCount(h)

	start, end := m.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item, _ := m.Item(i)
		cursor := "  "
		if i == m.Highlighted() && r.behavior.IsOpen() {
			cursor = "> "
		}
		mark := "( ) "
		if i == m.Selected() {
			mark = "(•) "
		}
		rows = append(rows, cursor+mark+item.Text)
	}
	r.world.SetContent(r.entity, block(rows, w, h))
}
