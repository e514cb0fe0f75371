package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/logger"
)

// Screen draws engine frames onto a tcell screen
type Screen struct {
	raw tcell.Screen
	log *logger.Logger
}

var _ engine.Sink = (*Screen)(nil)

// New wraps an initialized tcell screen
func New(s tcell.Screen, log *logger.Logger) *Screen {
	if log == nil {
		log = logger.Nop()
	}
	return &Screen{raw: s, log: log.With("component", "terminal")}
}

// Open creates and initializes a screen on the controlling terminal
func Open(log *logger.Logger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	s.HideCursor()

	scr := New(s, log)
	w, h := s.Size()
	scr.log.WithFields(map[string]any{"width": w, "height": h}).Debug("terminal opened")
	return scr, nil
}

// Raw returns the wrapped tcell screen
func (s *Screen) Raw() tcell.Screen { return s.raw }

func (s *Screen) Size() (int, int) { return s.raw.Size() }

// Close restores the terminal
func (s *Screen) Close() {
	s.raw.Fini()
	s.log.Debug("terminal closed")
}

// DrawFrame writes a frame's rows at its position. Rows and runes beyond the
// frame box or the screen are dropped; wide runes advance by their cell width.
func (s *Screen) DrawFrame(f engine.Frame) {
	sw, sh := s.raw.Size()
	style := Style(f.Style)

	for row, line := range strings.Split(f.Text, "\n") {
		if f.Height > 0 && row >= f.Height {
			break
		}
		y := f.Y + row
		if y < 0 {
			continue
		}
		if y >= sh {
			break
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
			if x >= sw {
				break
			}
			if x >= 0 {
				s.raw.SetContent(x, y, r, nil, style)
			}
			col += rw
		}
	}
}

// Repaint clears the screen and draws every visible entity of w
func (s *Screen) Repaint(w *engine.World) {
	s.raw.Clear()
	n := w.Render(s)
	s.raw.Show()
	s.log.WithFields(map[string]any{"frames": n}).Debug("repaint")
}

// Sync redraws the whole terminal, used after resizes
func (s *Screen) Sync(w *engine.World) {
	s.raw.Clear()
	w.Render(s)
	s.raw.Sync()
}
