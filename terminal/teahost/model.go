// Package teahost runs an engine.World inside a bubbletea program.
//
// The model renders every visible entity into a cell grid and styles runs of
// equal style with lipgloss, so the World stays the single source of content.
package teahost

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/color"
	"github.com/lixenwraith/tuikit/component"
	"github.com/lixenwraith/tuikit/engine"
)

// Handler receives widget key names; returning false ends the program
type Handler func(key string) bool

type Model struct {
	world    *engine.World
	handler  Handler
	renderer *lipgloss.Renderer
	keys     keyMap

	width, height int // 0 until the first WindowSizeMsg
	quitting      bool
}

// New returns a model drawing w. A nil renderer uses lipgloss' default.
func New(w *engine.World, handler Handler, renderer *lipgloss.Renderer) Model {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Model{world: w, handler: handler, renderer: renderer, keys: defaultKeyMap()}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.handler != nil && !m.handler(KeyName(msg)) {
			m.quitting = true
			m.world.Log.Debug("handler ended the program")
			return m, tea.Quit
		}
	}
	return m, nil
}

// Quitting reports whether the model has asked bubbletea to exit
func (m Model) Quitting() bool { return m.quitting }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var frames []engine.Frame
	m.world.Render(engine.SinkFunc(func(f engine.Frame) { frames = append(frames, f) }))

	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = extent(frames)
	}
	g := newGrid(w, h)
	for _, f := range frames {
		g.draw(f)
	}
	return g.render(m.renderer)
}

// extent sizes the grid to fit every frame when the window size is unknown
func extent(frames []engine.Frame) (int, int) {
	var w, h int
	for _, f := range frames {
		rows := strings.Split(f.Text, "\n")
		fh := len(rows)
		if f.Height > 0 {
			fh = min(fh, f.Height)
		}
		fw := f.Width
		if fw == 0 {
			for _, r := range rows {
				fw = max(fw, runewidth.StringWidth(r))
			}
		}
		w = max(w, f.X+fw)
		h = max(h, f.Y+fh)
	}
	return w, h
}

type gridCell struct {
	r     rune // 0 marks the tail of a wide rune
	style component.StyleComponent
}

type grid struct {
	w, h  int
	cells []gridCell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]gridCell, w*h)}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return g
}

func (g *grid) draw(f engine.Frame) {
	for row, line := range strings.Split(f.Text, "\n") {
		if f.Height > 0 && row >= f.Height {
			break
		}
		y := f.Y + row
		if y < 0 || y >= g.h {
			continue
		}
		col := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			if f.Width > 0 && col+rw > f.Width {
				break
			}
			x := f.X + col
			if x+rw > g.w {
				break
			}
			if x >= 0 {
				g.cells[y*g.w+x] = gridCell{r: r, style: f.Style}
				for i := 1; i < rw; i++ {
					g.cells[y*g.w+x+i] = gridCell{style: f.Style}
				}
			}
			col += rw
		}
	}
}

func (g *grid) render(re *lipgloss.Renderer) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := g.cells[y*g.w : (y+1)*g.w]
		for x := 0; x < len(row); {
			st := row[x].style
			run.Reset()
			for ; x < len(row) && row[x].style == st; x++ {
				if row[x].r != 0 {
					run.WriteRune(row[x].r)
				}
			}
			out.WriteString(styleFor(re, st).Render(run.String()))
		}
	}
	return out.String()
}

// styleFor maps an entity style onto lipgloss; unset colors are left to the terminal
func styleFor(re *lipgloss.Renderer, s component.StyleComponent) lipgloss.Style {
	st := re.NewStyle()
	if s.Fg.IsSet() {
		st = st.Foreground(lipgloss.Color(opaque(s.Fg).Hex()))
	}
	if s.Bg.IsSet() {
		st = st.Background(lipgloss.Color(opaque(s.Bg).Hex()))
	}
	return st.
		Bold(s.Attr&component.StyleBold != 0).
		Faint(s.Attr&component.StyleDim != 0).
		Underline(s.Attr&component.StyleUnderline != 0).
		Reverse(s.Attr&component.StyleReverse != 0)
}

func opaque(c color.Packed) color.Packed {
	return color.RGB(c.R(), c.G(), c.B())
}
