package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runnerr0/lifelog/internal/storage"
)

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
	sess, err := openSession(c.globals, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	return c.executeWithStore(sess.store, sess.cfg.Display.JSONIndent)
}

// executeWithStore runs the search against a provided store (for testing).
func (c *SearchCommand) executeWithStore(store storage.Store, indent string) error {
	keyword := normalizeInput(strings.Join(c.Args.Keyword, " "))
	if keyword == "" {
		return fmt.Errorf("a keyword is required")
	}

	results, err := store.Search(context.Background(), keyword)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		sel := &Selection{Label: keyword, Kind: MatchKeyword, Events: results}
		return writeJSON(os.Stdout, indent, toJSONSelection(sel))
	}

	if len(results) == 0 {
		fmt.Printf("No results found for %q\n", keyword)
		return nil
	}

	resultWord := "results"
	if len(results) == 1 {
		resultWord = "result"
	}
	fmt.Printf("Found %d %s for %q\n\n", len(results), resultWord, keyword)
	writeEvents(os.Stdout, results, "")
	return nil
}
