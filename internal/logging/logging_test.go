package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.name)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "level %q", test.name)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Config{Level: "warn", Service: "blizzard"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("no time to build robot", "robot", "geode")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="no time to build robot"`)
	assert.Contains(t, out, "service=blizzard")
	assert.Contains(t, out, "robot=geode")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Config{Level: "debug", Format: FormatJSON})
	require.NoError(t, err)

	logger.Debug("best state improved", "minutes", 18)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "best state improved", record["msg"])
	assert.Equal(t, float64(18), record["minutes"])
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
