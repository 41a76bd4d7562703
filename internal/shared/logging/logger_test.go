package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, slog.LevelInfo, "text")

	log.Debug("suppressed at info level")
	require.Empty(t, buf.String())

	log.Error("error reading input", "err", "device gone")
	require.Contains(t, buf.String(), "error reading input")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, slog.LevelInfo, "json")

	log.Info("opened sinks", "count", 4)
	require.Contains(t, buf.String(), `"msg":"opened sinks"`)
	require.Contains(t, buf.String(), `"count":4`)
}
