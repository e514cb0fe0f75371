package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tuikit/logger"
)

// Speaker plays through the system audio device, opened on first use
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *logger.Logger
}

func NewSpeaker(log *logger.Logger) *Speaker {
	if log == nil {
		log = logger.Nop()
	}
	return &Speaker{mixer: &beep.Mixer{}, log: log.With("component", "speaker")}
}

func (s *Speaker) init() error {
	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	s.log.Debug("speaker initialized")
	return nil
}

func (s *Speaker) Play(st beep.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.init(); err != nil {
		return err
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Mute discards everything
type Mute struct{}

func (Mute) Play(beep.Streamer) error { return nil }
