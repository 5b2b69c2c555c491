package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/runnerr0/lifelog/internal/storage"
)

// Execute implements the go-flags Commander interface for DeleteCommand.
func (c *DeleteCommand) Execute(args []string) error {
	id, err := parseEventID(c.Args.ID)
	if err != nil {
		return err
	}

	sess, err := openSession(c.globals, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, id)
}

// executeWithStore deletes id from a provided store (for testing).
func (c *DeleteCommand) executeWithStore(store storage.Store, id int64) error {
	if err := store.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return writeJSON(os.Stdout, "", map[string]interface{}{"deleted": id})
	}

	fmt.Printf("Deleted entry ID:%d.\n", id)
	return nil
}
