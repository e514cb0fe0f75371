package fsm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/core"
)

func selectTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewBuilder("closed").
		On("closed", "open", "open").
		On("closed", "toggle", "open").
		On("open", "close", "closed").
		On("open", "toggle", "closed").
		On("open", "select", "closed").
		On(Wildcard, "disable", "disabled").
		On("disabled", "enable", "closed").
		Compile()
	require.NoError(t, err)
	return tbl
}

func TestMachineTransitions(t *testing.T) {
	m := NewMachine(selectTable(t))
	assert.Equal(t, "closed", m.State())

	ch, ok := m.Send("open")
	require.True(t, ok)
	assert.Equal(t, Change{From: "closed", To: "open", Event: "open"}, ch)

	_, ok = m.Send("open")
	assert.False(t, ok, "no row for open in open")

	ch, ok = m.Send("toggle")
	require.True(t, ok)
	assert.Equal(t, "closed", ch.To)
}

func TestWildcardIsFallback(t *testing.T) {
	m := NewMachine(selectTable(t))
	m.Send("open")

	ch, ok := m.Send("disable")
	require.True(t, ok)
	assert.Equal(t, "open", ch.From)
	assert.Equal(t, "disabled", m.State())

	// Self transition through the wildcard is not a change
	assert.False(t, m.Can("disable"))
	_, ok = m.Send("disable")
	assert.False(t, ok)

	for _, ev := range []string{"open", "toggle", "select", "close"} {
		_, ok := m.Send(ev)
		assert.False(t, ok, ev)
	}
	assert.True(t, m.Can("enable"))
	m.Send("enable")
	assert.Equal(t, "closed", m.State())
}

func TestExactRowBeatsWildcard(t *testing.T) {
	tbl, err := NewBuilder("a").
		On(Wildcard, "go", "c").
		On("a", "go", "b").
		Compile()
	require.NoError(t, err)

	m := NewMachine(tbl)
	m.Send("go")
	assert.Equal(t, "b", m.State())
	m.Send("go")
	assert.Equal(t, "c", m.State())
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile(Config{Transitions: []TransitionConfig{{From: "a", Event: "e", To: "b"}}})
	assert.ErrorIs(t, err, ErrNoInitialState)

	_, err = NewBuilder("a").On("a", "e", "b").On("a", "e", "c").Compile()
	assert.ErrorIs(t, err, ErrDuplicateTransition)

	_, err = Compile(Config{Initial: "a", States: []string{"a"}, Transitions: []TransitionConfig{{From: "a", Event: "e", To: "b"}}})
	assert.ErrorIs(t, err, ErrUnknownState)

	_, err = NewBuilder("a").On("a", "e", Wildcard).Compile()
	assert.ErrorIs(t, err, ErrUnknownState)

	assert.Panics(t, func() { NewBuilder("").MustCompile() })
}

func TestTableIntrospection(t *testing.T) {
	tbl := selectTable(t)
	assert.Equal(t, []string{"closed", "disabled", "open"}, tbl.States())
	assert.Equal(t, "closed", tbl.Initial())
	_, ok := tbl.Target(StateRoot, "disable")
	assert.False(t, ok)
}

func TestForceAndReset(t *testing.T) {
	m := NewMachine(selectTable(t))
	ch, ok := m.Force("disabled")
	require.True(t, ok)
	assert.Equal(t, "", ch.Event)
	_, ok = m.Force("missing")
	assert.False(t, ok)
	_, ok = m.Force(Wildcard)
	assert.False(t, ok)
	m.Reset()
	assert.Equal(t, "closed", m.State())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	e := core.MakeEntity(1, 1)
	other := core.MakeEntity(1, 2)

	require.NoError(t, r.Attach(e, NewBuilder("idle").On("idle", "focus", "focused").Config()))
	assert.True(t, r.Has(e))
	assert.False(t, r.Has(other), "stale generation does not alias")
	assert.Equal(t, "idle", r.State(e))
	assert.Equal(t, "", r.State(other))

	assert.True(t, r.Send(e, "focus"))
	assert.False(t, r.Send(e, "focus"))
	assert.False(t, r.Send(other, "focus"))
	assert.Equal(t, 1, r.Count())

	r.Detach(e)
	assert.False(t, r.Has(e))
	assert.Error(t, r.Attach(e, Config{}))

	r.AttachTable(other, selectTable(t))
	r.Clear()
	assert.Equal(t, 0, r.Count())
}

const checkboxTOML = `
initial = "unchecked"
states = ["unchecked", "checked", "disabled"]

[[transitions]]
from = "unchecked"
event = "toggle"
to = "checked"

[[transitions]]
from = "checked"
event = "toggle"
to = "unchecked"

[[transitions]]
from = "*"
event = "disable"
to = "disabled"

[[transitions]]
from = "disabled"
event = "enable"
to = "unchecked"
`

func TestLoadConfig(t *testing.T) {
	tbl, err := LoadTable([]byte(checkboxTOML))
	require.NoError(t, err)

	m := NewMachine(tbl)
	m.Send("toggle")
	assert.Equal(t, "checked", m.State())
	m.Send("disable")
	m.Send("toggle")
	assert.Equal(t, "disabled", m.State())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig([]byte("initial = \n"))
	var pe *config.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Positive(t, pe.Line)

	var ve *config.ValidationError
	_, err = LoadConfig([]byte(`initial = "a"`))
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "transitions", ve.Field)

	_, err = LoadConfig([]byte("initial = \"a\"\ncolour = 1\n[[transitions]]\nfrom=\"a\"\nevent=\"e\"\nto=\"b\"\n"))
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "colour", ve.Field)

	_, err = LoadConfig([]byte("initial = \"a\"\n[[transitions]]\nfrom=\"a\"\nevent=\"e\"\nto=\"b\"\n[[transitions]]\nfrom=\"a\"\nevent=\"e\"\nto=\"c\"\n"))
	require.True(t, errors.As(err, &ve))
	assert.ErrorIs(t, err, ErrDuplicateTransition)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "checkbox.toml")
	require.NoError(t, os.WriteFile(good, []byte(checkboxTOML), 0o600))
	cfg, err := LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "unchecked", cfg.Initial)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("initial = = 1"), 0o600))
	_, err = LoadFile(bad)
	var pe *config.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, bad, pe.Path)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	require.True(t, errors.As(err, &pe))
}
