package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/runnerr0/lifelog/internal/storage"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	if err := c.validate(); err != nil {
		return err
	}

	sess, err := openSession(c.globals, clockOrSystem(c.clock))
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, sess.cfg.Display.JSONIndent)
}

// validate rejects combinations of selectors; at most one may be given.
func (c *ListCommand) validate() error {
	n := 0
	for _, set := range []bool{c.Today, c.Yesterday, c.All, c.From != "", c.Args.Literal != ""} {
		if set {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("--today, --yesterday, --all, --from and a literal are mutually exclusive")
	}
	return nil
}

// selection runs the query chosen by the flags. With no selector it lists today.
func (c *ListCommand) selection(ctx context.Context, store storage.Store) (*Selection, error) {
	now := clockOrSystem(c.clock).Now()

	switch {
	case c.Yesterday:
		return selectYesterday(ctx, store, now)
	case c.All:
		return selectAll(ctx, store)
	case c.From != "":
		return selectFrom(ctx, store, normalizeInput(c.From))
	case c.Args.Literal != "":
		return Lookup(ctx, store, normalizeInput(c.Args.Literal))
	default:
		return selectToday(ctx, store, now)
	}
}

// executeWithStore runs the listing against a provided store (for testing).
func (c *ListCommand) executeWithStore(store storage.Store, indent string) error {
	if err := c.validate(); err != nil {
		return err
	}

	sel, err := c.selection(context.Background(), store)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		return writeJSON(os.Stdout, indent, toJSONSelection(sel))
	}

	switch sel.Kind {
	case MatchKeyword:
		fmt.Printf("--- Search results for %q ---\n", sel.Label)
	case MatchRange:
		fmt.Printf("--- Entries from %s onward ---\n", sel.Label)
	case MatchAll:
		fmt.Println("--- All entries ---")
	default:
		fmt.Printf("--- Entries for %s ---\n", sel.Label)
	}
	writeEvents(os.Stdout, sel.Events, "No matching entries.")
	return nil
}
