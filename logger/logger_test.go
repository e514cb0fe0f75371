package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "gauge", "entity": "entity(3:1)"})
	log.Info("widget created")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "widget created", entry["message"])
	require.Equal(t, "gauge", entry["widget"])
	require.Equal(t, "entity(3:1)", entry["entity"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("transition rejected")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("widget", "select").Error(errors.New("boom"), "construction failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "construction failed", entry["message"])
	require.Equal(t, "select", entry["widget"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		l.Info("x")
		l.Debug("x")
		l.Warn("x")
		l.Error(errors.New("x"), "x")
		require.Nil(t, l.WithFields(map[string]any{"a": 1}))
		require.Nil(t, l.With("a", "b"))
	})
	require.NotPanics(t, func() { Nop().Error(nil, "dropped") })
}
