package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/engine/fsm"
	"github.com/lixenwraith/tuikit/event"
	"github.com/lixenwraith/tuikit/widget/interactive"
)

type QuestionOptions struct {
	Bounds
	Prompt   string `validate:"required,max=512"`
	YesLabel string `validate:"max=32"` // "" = "Yes"
	NoLabel  string `validate:"max=32"` // "" = "No"
	Bell     Bell
}

type questionState struct {
	prompt  string
	yes, no string
	focus   int // 0 yes, 1 no
}

// Question is a yes/no dialog: hidden until Show, hidden again once answered
type Question struct {
	base
	behavior *interactive.Behavior

	OnConfirm event.Hooks[struct{}]
	OnCancel  event.Hooks[struct{}]
}

func NewQuestion(w *engine.World, opts QuestionOptions) (*Question, error) {
	if err := validateOptions(w, "question", opts); err != nil {
		return nil, err
	}
	if opts.YesLabel == "" {
		opts.YesLabel = "Yes"
	}
	if opts.NoLabel == "" {
		opts.NoLabel = "No"
	}

	q := &Question{base: newBase(w, "question", opts.Bounds, component.ZIndexDialog, opts.Bell)}
	b, err := interactive.Attach(w, q.entity, interactive.Question)
	if err != nil {
		_ = q.Destroy()
		return nil, err
	}
	q.behavior = b
	attachState(&q.base, &questionState{prompt: opts.Prompt, yes: opts.YesLabel, no: opts.NoLabel})
	q.render = q.compose

	q.SetVisible(false)
	q.behavior.OnOpen.Add(func(fsm.Change) {
		mutate(&q.base, func(st *questionState) { st.focus = 0 })
		q.SetVisible(true)
	})
	q.behavior.OnClose.Add(func(fsm.Change) { q.SetVisible(false) })
	q.redraw()
	return q, nil
}

func (q *Question) State() string { return q.behavior.State() }

func (q *Question) IsShown() bool { return q.behavior.IsOpen() }

// Show reveals the dialog with the affirmative button focused
func (q *Question) Show() bool { return q.behavior.Send(interactive.EventShow) }

// Hide dismisses without answering
func (q *Question) Hide() bool { return q.behavior.Send(interactive.EventHide) }

func (q *Question) SetPrompt(prompt string) {
	mutate(&q.base, func(st *questionState) { st.prompt = prompt })
}

// Focused returns 0 when the affirmative button has focus, 1 otherwise
func (q *Question) Focused() int {
	st, ok := sideState[questionState](&q.base)
	if !ok {
		return 0
	}
	return st.focus
}

func (q *Question) HandleKey(key string) (Action, bool) {
	a, ok := HandleQuestionKey(q.State(), key)
	if !ok {
		return a, false
	}
	q.Dispatch(a)
	return a, true
}

func (q *Question) Dispatch(a Action) bool {
	st, ok := sideState[questionState](&q.base)
	if !ok {
		return false
	}
	if !q.behavior.IsOpen() {
		q.reject(a)
		return false
	}

	var done bool
	switch a.Kind {
	case ActionConfirm:
		done = q.answer(true)
	case ActionCancel:
		done = q.answer(false)
	case ActionSelectHighlighted:
		done = q.answer(st.focus == 0)
	case ActionHighlightNext, ActionHighlightPrev:
		st.focus = 1 - st.focus
		done = true
	}
	if !done {
		q.reject(a)
		return false
	}
	q.redraw()
	return true
}

func (q *Question) answer(yes bool) bool {
	if yes {
		if !q.behavior.Send(interactive.EventConfirm) {
			return false
		}
		q.world.Notify(q.entity, event.Confirm, "")
		q.OnConfirm.Fire(struct{}{})
		return true
	}
	if !q.behavior.Send(interactive.EventCancel) {
		return false
	}
	q.world.Notify(q.entity, event.Cancel, "")
	q.OnCancel.Fire(struct{}{})
	return true
}

// compose puts the prompt lines on top and the centered buttons on the last row
func (q *Question) compose() {
	st, ok := sideState[questionState](&q.base)
	if !ok {
		return
	}
	w, h := q.Size()

	yes, no := " "+st.yes+" ", " "+st.no+" "
	if st.focus == 0 {
		yes = "[" + st.yes + "]"
	} else {
		no = "[" + st.no + "]"
	}
	buttons := yes + "   " + no
	pad := max((w-runewidth.StringWidth(buttons))/2, 0)
	buttons = strings.Repeat(" ", pad) + buttons

	rows := strings.Split(st.prompt, "\n")
	if len(rows) > h-1 {
		rows = rows[:max(h-1, 0)]
	}
	for len(rows) < h-1 {
		rows = append(rows, "")
	}
	rows = append(rows, buttons)
	q.world.SetContent(q.entity, block(rows, w, h))
}
