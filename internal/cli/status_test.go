package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand_EmptyDB(t *testing.T) {
	store, _ := testStore(t)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, store.Path(), "  "))
	})

	assert.Contains(t, out, "Lifelog Status")
	assert.Contains(t, out, "Version:       1.0.0")
	assert.Contains(t, out, "Entries:       0")
	assert.NotContains(t, out, "Oldest:")
}

func TestStatusCommand_WithData(t *testing.T) {
	store, clk := testStore(t)
	seed(t, store, clk,
		entry{time.Date(2025, 12, 1, 9, 0, 0, 0, time.Local), "first"},
		entry{time.Date(2025, 12, 25, 9, 0, 0, 0, time.Local), "last"},
	)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, store.Path(), "  "))
	})

	assert.Contains(t, out, "Entries:       2")
	assert.Contains(t, out, "Oldest:        2025-12-01 09:00:00")
	assert.Contains(t, out, "Newest:        2025-12-25 09:00:00")
	assert.Contains(t, out, "Last ID:       2")
}

func TestStatusCommand_JSON(t *testing.T) {
	store, clk := testStore(t)
	seed(t, store, clk, entry{testNow, "only"})

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, store.Path(), "  "))
	})

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, store.Path(), got.DatabasePath)
	assert.Equal(t, int64(1), got.TotalEvents)
	assert.Equal(t, "2025-12-25 08:15:00", got.OldestEvent)
	assert.Greater(t, got.DatabaseSizeBytes, int64(0))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "4.0 KB", formatBytes(4096))
	assert.Equal(t, "1.5 MB", formatBytes(3<<19))
	assert.Equal(t, "2.0 GB", formatBytes(2<<30))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "123,456", formatNumber(123456))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
}
