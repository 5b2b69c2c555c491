package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/lifelog/internal/clock"
	"github.com/runnerr0/lifelog/internal/storage"
)

var testNow = time.Date(2025, 12, 25, 8, 15, 0, 0, time.Local)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testStore opens a journal on a temp file whose clock starts at testNow.
func testStore(t *testing.T) (*storage.SQLiteStore, *clock.Fixed) {
	t.Helper()
	clk := clock.NewFixed(testNow)
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"), storage.Options{Clock: clk})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, clk
}

type entry struct {
	at   time.Time
	text string
}

// seed inserts entries in order, then resets the clock to testNow.
func seed(t *testing.T, store *storage.SQLiteStore, clk *clock.Fixed, entries ...entry) []*storage.Event {
	t.Helper()
	var out []*storage.Event
	for _, e := range entries {
		clk.Set(e.at)
		ev, err := store.Insert(context.Background(), e.text)
		require.NoError(t, err)
		out = append(out, ev)
	}
	clk.Set(testNow)
	return out
}
