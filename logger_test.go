package gapset

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithUniverse(1024).
		WithPath("/tmp/sets.gset")

	logger.LogSave(3, 128, nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "save completed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.InDelta(t, 1024, entry["universe"], 0)
	assert.Equal(t, "/tmp/sets.gset", entry["path"])
	assert.InDelta(t, 3, entry["records"], 0)
	assert.InDelta(t, 128, entry["bytes"], 0)
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.LogLoad(2, errors.New("boom"))
	logger.LogRecord(0, Dense, 100, 40)
	logger.LogCorruption(1, ErrCorrupt)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR msg=\"load failed\"")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "representation=dense")
	assert.Contains(t, out, "level=WARN msg=\"corrupt record\"")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestLogger_Noop(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	logger.LogSave(1, 1, errors.New("ignored"))
}
