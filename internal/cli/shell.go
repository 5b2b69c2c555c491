package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/runnerr0/lifelog/internal/clock"
	"github.com/runnerr0/lifelog/internal/storage"
)

const maxLineBytes = 1 << 20

// Execute implements the go-flags Commander interface for ShellCommand.
func (c *ShellCommand) Execute(args []string) error {
	clk := clockOrSystem(c.clock)
	sess, err := openSession(c.globals, clk)
	if err != nil {
		return err
	}
	defer sess.Close()

	sh := c.newShell(sess.store, sess.store.Path(), sess.cfg.Display.Language, sess.log)
	return sh.run(context.Background())
}

func (c *ShellCommand) newShell(store storage.Store, dbPath, lang string, log *slog.Logger) *shell {
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	return &shell{
		store:   store,
		dbPath:  dbPath,
		clock:   clockOrSystem(c.clock),
		msg:     messagesFor(lang),
		log:     log,
		scanner: scanner,
		out:     out,
	}
}

// shell is one interactive session: record, list, then optionally delete.
type shell struct {
	store  storage.Store
	dbPath string
	clock  clock.Clock
	msg    messages
	log    *slog.Logger

	scanner *bufio.Scanner
	out     io.Writer
}

// prompt prints p and reads one line. ok is false at end of input.
func (s *shell) prompt(p string) (line string, ok bool) {
	fmt.Fprint(s.out, p)
	if !s.scanner.Scan() {
		return "", false
	}
	return normalizeInput(s.scanner.Text()), true
}

func (s *shell) run(ctx context.Context) error {
	more, err := s.record(ctx)
	if err != nil || !more {
		return err
	}

	sel, ok, err := s.choose(ctx)
	if err != nil || !ok {
		return err
	}
	writeEvents(s.out, sel.Events, s.msg.NoEntries)

	return s.maybeDelete(ctx)
}

// record saves each non-blank line until "exit". more is false when the
// input ended instead.
func (s *shell) record(ctx context.Context) (more bool, err error) {
	fmt.Fprintf(s.out, s.msg.InputHeader+"\n", s.dbPath)
	for {
		line, ok := s.prompt(s.msg.InputPrompt)
		if !ok {
			return false, s.scanner.Err()
		}
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return true, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		event, err := s.store.Insert(ctx, line)
		if err != nil {
			return false, fmt.Errorf("storing event: %w", err)
		}
		s.log.Info("entry recorded", "id", event.ID)
		fmt.Fprintf(s.out, s.msg.Saved+"\n", event.Text)
	}
}

// choose shows the menu and runs the selected listing.
func (s *shell) choose(ctx context.Context) (*Selection, bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.msg.MenuTitle)
	fmt.Fprintln(s.out, s.msg.MenuOptions)
	fmt.Fprintln(s.out, s.msg.MenuLiteral)

	choice, ok := s.prompt(s.msg.ChoicePrompt)
	if !ok {
		return nil, false, s.scanner.Err()
	}

	now := s.clock.Now()
	var sel *Selection
	var err error

	switch strings.TrimSpace(choice) {
	case "1":
		sel, err = selectToday(ctx, s.store, now)
	case "2":
		sel, err = selectYesterday(ctx, s.store, now)
	case "3":
		sel, err = selectAll(ctx, s.store)
	case "4":
		start, ok := s.prompt(s.msg.FromPrompt)
		if !ok {
			return nil, false, s.scanner.Err()
		}
		sel, err = selectFrom(ctx, s.store, strings.TrimSpace(start))
	default:
		sel, err = Lookup(ctx, s.store, choice)
		if err == nil {
			fmt.Fprintln(s.out)
			if sel.Kind == MatchKeyword {
				fmt.Fprintf(s.out, s.msg.KeywordHeader+"\n", sel.Label)
			} else {
				fmt.Fprintf(s.out, s.msg.DateHeader+"\n", sel.Label)
			}
		}
	}
	if err != nil {
		return nil, false, err
	}

	s.log.Debug("listing", "kind", string(sel.Kind), "literal", choice, "count", len(sel.Events))
	return sel, true, nil
}

// maybeDelete offers deletion by ID. An invalid ID is reported to the user,
// not returned as an error.
func (s *shell) maybeDelete(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.msg.ActionsHint)

	action, ok := s.prompt(s.msg.ChoicePrompt)
	if !ok || !strings.EqualFold(strings.TrimSpace(action), "delete") {
		return s.scanner.Err()
	}

	raw, ok := s.prompt(s.msg.DeletePrompt)
	if !ok {
		return s.scanner.Err()
	}

	id, err := parseEventID(raw)
	if err != nil {
		s.log.Warn("rejected delete id", "input", raw)
		fmt.Fprintln(s.out, s.msg.BadID)
		return nil
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	s.log.Info("entry deleted", "id", id)
	fmt.Fprintf(s.out, s.msg.Deleted+"\n", id)
	return nil
}
