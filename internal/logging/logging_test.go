package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logSingleField(t *testing.T, key string, value any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelDebug)
	logger.Info("event", key, value)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestRedactionTextField(t *testing.T) {
	t.Parallel()
	out := logSingleField(t, "text", "I ate だし巻き卵")
	require.Equal(t, "[REDACTED]", out["text"])
}

func TestRedactionKeywordField(t *testing.T) {
	t.Parallel()
	out := logSingleField(t, "keyword", "secret crush")
	require.Equal(t, "[REDACTED]", out["keyword"])
}

func TestRedactionIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	out := logSingleField(t, "Literal", "2025-12-25")
	require.Equal(t, "[REDACTED]", out["Literal"])
}

func TestNonSensitiveFieldsPassThrough(t *testing.T) {
	t.Parallel()
	out := logSingleField(t, "id", 42)
	require.Equal(t, float64(42), out["id"])
}

func TestRedactionNestedGroup(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelDebug)
	logger.Info("event", slog.Group("entry", slog.Int64("id", 7), slog.String("text", "private")))

	var out struct {
		Entry map[string]any `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "[REDACTED]", out.Entry["text"])
	assert.Equal(t, float64(7), out.Entry["id"])
}

func TestRedactionWithAttrs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelDebug).With("text", "private")
	logger.Info("event")
	assert.NotContains(t, buf.String(), "private")
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelWarn)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lifelog.log")

	logger, closer, err := New(Options{
		Level:          "debug",
		RotationConfig: RotationConfig{File: path},
	})
	require.NoError(t, err)

	logger.Debug("event inserted", "id", 1, "text", "diary entry")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"event inserted"`)
	assert.False(t, strings.Contains(string(data), "diary entry"))
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(Options{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Error("nothing happens")
	assert.NoError(t, closer.Close())
}

func TestNewRotatingWriterRequiresPath(t *testing.T) {
	_, err := NewRotatingWriter(RotationConfig{})
	assert.Error(t, err)
}

func TestNewRotatingWriterDefaults(t *testing.T) {
	w, err := NewRotatingWriter(RotationConfig{File: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.Equal(t, 10, w.MaxSize)
	assert.Equal(t, 3, w.MaxBackups)
}
