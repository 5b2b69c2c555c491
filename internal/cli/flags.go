package cli

import (
	"io"

	"github.com/runnerr0/lifelog/internal/clock"
)

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file (default: lifelog.yaml next to the executable)" default:""`
	DB      string `long:"db" description:"Path to the journal database, overriding the config file"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Log debug output to stderr"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// AddCommand records one journal entry.
type AddCommand struct {
	Args struct {
		Text []string `positional-arg-name:"TEXT" required:"1"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
	clock   clock.Clock
}

// ListCommand lists entries for a day, a range, everything, or a literal
// that is tried as a date first and as a keyword second.
type ListCommand struct {
	Today     bool   `long:"today" description:"Entries recorded today (default)"`
	Yesterday bool   `long:"yesterday" description:"Entries recorded yesterday"`
	All       bool   `long:"all" description:"Every entry"`
	From      string `long:"from" description:"Entries from this date (YYYY-MM-DD) onward"`

	Args struct {
		Literal string `positional-arg-name:"DATE-OR-KEYWORD"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
	clock   clock.Clock
}

// SearchCommand lists entries whose text contains a keyword.
type SearchCommand struct {
	Args struct {
		Keyword []string `positional-arg-name:"KEYWORD" required:"1"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// ShowCommand prints a single entry.
type ShowCommand struct {
	ID string `long:"id" description:"Entry ID (required)" required:"yes"`

	globals *GlobalFlags
	version string
}

// DeleteCommand deletes an entry by numeric ID.
type DeleteCommand struct {
	Args struct {
		ID string `positional-arg-name:"ID" required:"yes"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// StatusCommand shows database location and statistics.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// ShellCommand runs the interactive record/list/delete session.
type ShellCommand struct {
	globals *GlobalFlags
	version string
	clock   clock.Clock

	in  io.Reader // injectable for testing; nil means os.Stdin
	out io.Writer // injectable for testing; nil means os.Stdout
}
