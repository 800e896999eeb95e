package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestDatabaseResult_LogsErrorAsJSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeTo(&buf, "info", "json")
	t.Cleanup(func() { defaultLogger = nil })

	DatabaseCall(context.Background(), "find", "tools") // debug, filtered out
	DatabaseResult(context.Background(), "find", "tools", errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "tools", rec["collection"])
	assert.Equal(t, "boom", rec["error"])
}
