package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/logger"
)

type recorder struct {
	played []beep.Streamer
	err    error
}

func (r *recorder) Play(s beep.Streamer) error {
	r.played = append(r.played, s)
	return r.err
}

// drain streams s to the end and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 1000 {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestBellRingPlaysTone(t *testing.T) {
	rec := &recorder{}
	b, err := NewBell(rec, DefaultBellOptions(), nil)
	require.NoError(t, err)

	b.Ring()
	b.Ring()
	require.Len(t, rec.played, 2)

	n, peak := drain(t, rec.played[0])
	assert.Equal(t, SampleRate.N(80*time.Millisecond), n)
	assert.Greater(t, peak, 0.1)
	assert.LessOrEqual(t, peak, 0.5+1e-9)
}

func TestToneEnvelopeStartsSilent(t *testing.T) {
	s, err := Tone(440, 20*time.Millisecond, 1, SampleRate)
	require.NoError(t, err)

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.Less(t, math.Abs(buf[3][0]), 0.05)
}

func TestToneMuted(t *testing.T) {
	s, err := Tone(440, 10*time.Millisecond, 0, SampleRate)
	require.NoError(t, err)
	n, peak := drain(t, s)
	assert.Equal(t, SampleRate.N(10*time.Millisecond), n)
	assert.Zero(t, peak)
}

func TestNewBellValidates(t *testing.T) {
	var ve *config.ValidationError

	_, err := NewBell(&recorder{}, BellOptions{Frequency: 0, Duration: time.Millisecond}, nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "frequency", ve.Field)

	_, err = NewBell(&recorder{}, BellOptions{Frequency: 440, Duration: 3 * time.Second}, nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "duration", ve.Field)

	_, err = NewBell(nil, DefaultBellOptions(), nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "player", ve.Field)
}

func TestBellLogsPlaybackFailure(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	b, err := NewBell(&recorder{err: errors.New("no device")}, DefaultBellOptions(), log)
	require.NoError(t, err)
	b.Ring()
	assert.Contains(t, buf.String(), "bell playback")
	assert.Contains(t, buf.String(), "no device")
}

func TestMuteAndClosedSpeaker(t *testing.T) {
	assert.NoError(t, Mute{}.Play(nil))
	// closing a speaker that never played must not touch the device
	NewSpeaker(nil).Close()
}
