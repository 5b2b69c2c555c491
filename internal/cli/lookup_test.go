package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_DateFirst(t *testing.T) {
	store, clk := testStore(t)
	events := seed(t, store, clk,
		entry{time.Date(2025, 12, 24, 20, 0, 0, 0, time.Local), "eve"},
		entry{time.Date(2025, 12, 25, 9, 0, 0, 0, time.Local), "presents"},
	)

	sel, err := Lookup(context.Background(), store, "2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, MatchDate, sel.Kind)
	require.Len(t, sel.Events, 1)
	assert.Equal(t, events[1].ID, sel.Events[0].ID)
}

func TestLookup_FallsBackToKeyword(t *testing.T) {
	store, clk := testStore(t)
	seed(t, store, clk,
		entry{testNow, "I ate だし巻き卵"},
		entry{testNow, "went for a run"},
	)

	sel, err := Lookup(context.Background(), store, "だし巻き卵")
	require.NoError(t, err)
	assert.Equal(t, MatchKeyword, sel.Kind)
	assert.Equal(t, "だし巻き卵", sel.Label)
	require.Len(t, sel.Events, 1)
	assert.Equal(t, "I ate だし巻き卵", sel.Events[0].Text)
}

func TestLookup_DateWithNoEntriesSearchesText(t *testing.T) {
	store, clk := testStore(t)
	seed(t, store, clk,
		entry{testNow, "remember 2024-01-01 resolutions"},
	)

	sel, err := Lookup(context.Background(), store, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, MatchKeyword, sel.Kind)
	assert.Len(t, sel.Events, 1)
}

func TestLookup_NothingMatches(t *testing.T) {
	store, _ := testStore(t)

	sel, err := Lookup(context.Background(), store, "ラーメン")
	require.NoError(t, err)
	assert.Equal(t, MatchKeyword, sel.Kind)
	assert.NotNil(t, sel.Events)
	assert.Empty(t, sel.Events)
}

func TestSelectYesterday(t *testing.T) {
	store, clk := testStore(t)
	events := seed(t, store, clk,
		entry{time.Date(2025, 12, 24, 23, 59, 59, 0, time.Local), "yesterday late"},
		entry{time.Date(2025, 12, 25, 0, 0, 0, 0, time.Local), "today early"},
	)

	sel, err := selectYesterday(context.Background(), store, testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", sel.Label)
	require.Len(t, sel.Events, 1)
	assert.Equal(t, events[0].ID, sel.Events[0].ID)
}

func TestSelectYesterday_AcrossMonthBoundary(t *testing.T) {
	store, _ := testStore(t)

	sel, err := selectYesterday(context.Background(), store, time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", sel.Label)
}
