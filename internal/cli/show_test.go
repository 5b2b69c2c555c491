package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand_PrintsEntry(t *testing.T) {
	store, clk := testStore(t)
	events := seed(t, store, clk, entry{testNow, "studied for 2 hours"})

	cmd := &ShowCommand{globals: &GlobalFlags{}}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, events[0].ID, "  "))
	})

	assert.Equal(t, "ID:        1\nRecorded:  2025-12-25 08:15:00\n\nstudied for 2 hours\n", out)
}

func TestShowCommand_JSON(t *testing.T) {
	store, clk := testStore(t)
	events := seed(t, store, clk, entry{testNow, "went for a run"})

	cmd := &ShowCommand{globals: &GlobalFlags{JSON: true}}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, events[0].ID, "  "))
	})

	var got jsonEvent
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, jsonEvent{ID: 1, Timestamp: "2025-12-25 08:15:00", Text: "went for a run"}, got)
}

func TestShowCommand_NotFound(t *testing.T) {
	store, _ := testStore(t)

	cmd := &ShowCommand{globals: &GlobalFlags{}}
	err := cmd.executeWithStore(store, 99, "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry not found: 99")
}
