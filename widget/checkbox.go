package widget

import (
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

type CheckboxOptions struct {
	Bounds
	Label   string `validate:"max=128"`
	Checked bool
	Bell    Bell
}

type checkboxState struct {
	label   string
	checked bool // survives a disable/enable round trip
}

// Checkbox is a labelled toggle: unchecked, checked or disabled
type Checkbox struct {
	base
	behavior *interactive.Behavior

	// OnChange fires with the new checked value
	OnChange event.Hooks[bool]
}

func NewCheckbox(w *engine.World, opts CheckboxOptions) (*Checkbox, error) {
	if err := validateOptions(w, "checkbox", opts); err != nil {
		return nil, err
	}
	c := &Checkbox{base: newBase(w, "checkbox", opts.Bounds, component.ZIndexWidget, opts.Bell)}
	b, err := interactive.Attach(w, c.entity, interactive.Checkbox)
	if err != nil {
		_ = c.Destroy()
		return nil, err
	}
	c.behavior = b
	attachState(&c.base, &checkboxState{label: opts.Label})
	c.render = c.compose
	if opts.Checked {
		c.behavior.Force(interactive.StateChecked)
		mutate(&c.base, func(st *checkboxState) { st.checked = true })
	}
	c.redraw()
	return c, nil
}

func (c *Checkbox) State() string { return c.behavior.State() }

func (c *Checkbox) Checked() bool {
	st, ok := sideState[checkboxState](&c.base)
	return ok && st.checked
}

func (c *Checkbox) Disabled() bool { return c.behavior.IsDisabled() }

// Toggle flips the box; false while disabled
func (c *Checkbox) Toggle() bool {
	return c.Dispatch(act(ActionToggle))
}

func (c *Checkbox) SetLabel(label string) {
	mutate(&c.base, func(st *checkboxState) { st.label = label })
}

func (c *Checkbox) Disable() bool {
	if !c.behavior.Send(interactive.EventDisable) {
		return false
	}
	c.redraw()
	return true
}

// Enable leaves the disabled state and restores the checked value
func (c *Checkbox) Enable() bool {
	if !c.behavior.Send(interactive.EventEnable) {
		return false
	}
	if c.Checked() {
		c.behavior.Force(interactive.StateChecked)
	}
	c.redraw()
	return true
}

func (c *Checkbox) HandleKey(key string) (Action, bool) {
	a, ok := HandleCheckboxKey(c.State(), key)
	if !ok {
		return a, false
	}
	c.Dispatch(a)
	return a, true
}

func (c *Checkbox) Dispatch(a Action) bool {
	st, ok := sideState[checkboxState](&c.base)
	if !ok {
		return false
	}
	if a.Kind != ActionToggle || !c.behavior.Send(interactive.EventToggle) {
		c.reject(a)
		return false
	}
	st.checked = c.behavior.State() == interactive.StateChecked
	c.OnChange.Fire(st.checked)
	c.redraw()
	return true
}

func (c *Checkbox) compose() {
	st, ok := sideState[checkboxState](&c.base)
	if !ok {
		return
	}
	box := "[ ] "
	switch {
	case c.behavior.IsDisabled():
		box = "[-] "
	case st.checked:
		box = "[x] "
	}

	style := c.world.Style(c.entity)
	if c.behavior.IsDisabled() {
		style.Attr |= component.StyleDim
	} else {
		style.Attr &^= component.StyleDim
	}
	c.world.SetStyle(c.entity, style)

	w, h := c.Size()
	c.world.SetContent(c.entity, block([]string{box + st.label}, w, h))
}
