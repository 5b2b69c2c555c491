package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runnerr0/lifelog/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string `json:"version"`
	DatabasePath      string `json:"database_path"`
	DatabaseSizeBytes int64  `json:"database_size_bytes"`
	TotalEvents       int64  `json:"total_events"`
	LastID            int64  `json:"last_id"`
	OldestEvent       string `json:"oldest_event,omitempty"`
	NewestEvent       string `json:"newest_event,omitempty"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	sess, err := openSession(c.globals, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, sess.store.Path(), sess.cfg.Display.JSONIndent)
}

// executeWithStore runs status against a provided store (for testing).
func (c *StatusCommand) executeWithStore(store storage.Store, dbPath, indent string) error {
	stats, err := store.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Version:           c.version,
			DatabasePath:      dbPath,
			DatabaseSizeBytes: stats.DatabaseSizeBytes,
			TotalEvents:       stats.TotalEvents,
			LastID:            stats.LastID,
		}
		if stats.TotalEvents > 0 {
			out.OldestEvent = stats.OldestEvent.Format(storage.TimestampLayout)
			out.NewestEvent = stats.NewestEvent.Format(storage.TimestampLayout)
		}
		return writeJSON(os.Stdout, indent, out)
	}

	fmt.Println("Lifelog Status")
	fmt.Println("==============")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Database:      %s (%s)\n", dbPath, formatBytes(stats.DatabaseSizeBytes))
	fmt.Printf("Entries:       %s\n", formatNumber(stats.TotalEvents))

	if stats.TotalEvents > 0 {
		fmt.Printf("Oldest:        %s\n", stats.OldestEvent.Format(storage.TimestampLayout))
		fmt.Printf("Newest:        %s\n", stats.NewestEvent.Format(storage.TimestampLayout))
		fmt.Printf("Last ID:       %d\n", stats.LastID)
	}

	return nil
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if i > 0 {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
