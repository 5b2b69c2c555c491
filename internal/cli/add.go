package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runnerr0/lifelog/internal/storage"
)

// Execute implements the go-flags Commander interface for AddCommand.
func (c *AddCommand) Execute(args []string) error {
	sess, err := openSession(c.globals, clockOrSystem(c.clock))
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, sess.cfg.Display.JSONIndent)
}

// executeWithStore runs the add logic against a provided store (used by tests).
func (c *AddCommand) executeWithStore(store storage.Store, indent string) error {
	text := normalizeInput(strings.Join(c.Args.Text, " "))
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to record: entry text is empty")
	}

	event, err := store.Insert(context.Background(), text)
	if err != nil {
		return fmt.Errorf("storing event: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return writeJSON(os.Stdout, indent, toJSONEvent(*event))
	}

	fmt.Printf("Saved %s\n", formatEvent(*event))
	return nil
}
