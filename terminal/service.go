package terminal

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/engine"
)

// Input is one polled terminal event: a named key or a resize
type Input struct {
	Key    string
	Resize bool
	Width  int
	Height int
}

// Service polls screen events on its own goroutine
type Service struct {
	screen  *Screen
	eventCh chan Input
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

func NewService(screen *Screen) *Service {
	return &Service{
		screen:  screen,
		eventCh: make(chan Input, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the polling goroutine; a second call is a no-op
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
	return nil
}

func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.screen.raw.Fini()
			s.screen.log.Error(fmt.Errorf("%v", r), "terminal poll crashed")
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		var in Input
		switch ev := s.screen.raw.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			in.Key = KeyName(ev)
			if in.Key == "" {
				continue
			}
		case *tcell.EventResize:
			in.Resize = true
			in.Width, in.Height = ev.Size()
		default:
			continue
		}

		select {
		case s.eventCh <- in:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and waits for the goroutine; the screen stays open
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	// wakes PollEvent
	_ = s.screen.raw.PostEvent(tcell.NewEventInterrupt(nil))
	<-s.doneCh
	return nil
}

func (s *Service) Events() <-chan Input {
	return s.eventCh
}

// Run paints w, then feeds keys to handle and repaints whenever the world
// changed. It returns nil once handle returns false or polling ends, and the
// context error when ctx is done. The service must be started.
func (s *Service) Run(ctx context.Context, w *engine.World, handle func(Input) bool) error {
	s.screen.Repaint(w)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.doneCh:
			return nil
		case in := <-s.eventCh:
			if in.Resize {
				s.screen.Sync(w)
				continue
			}
			keep := handle(in)
			if w.NeedsRedraw() {
				s.screen.Repaint(w)
			}
			if !keep {
				return nil
			}
		}
	}
}
