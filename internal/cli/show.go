package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/runnerr0/lifelog/internal/storage"
)

// Execute implements the go-flags Commander interface for ShowCommand.
func (c *ShowCommand) Execute(args []string) error {
	id, err := parseEventID(c.ID)
	if err != nil {
		return err
	}

	sess, err := openSession(c.globals, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, id, sess.cfg.Display.JSONIndent)
}

func (c *ShowCommand) executeWithStore(store storage.Store, id int64, indent string) error {
	event, err := store.Get(context.Background(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("entry not found: %d", id)
		}
		return err
	}

	if c.globals != nil && c.globals.JSON {
		return writeJSON(os.Stdout, indent, toJSONEvent(*event))
	}

	fmt.Printf("ID:        %d\n", event.ID)
	fmt.Printf("Recorded:  %s\n", event.Stamp())
	fmt.Println()
	fmt.Println(event.Text)
	return nil
}
