package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Add    *AddCommand
	List   *ListCommand
	Search *SearchCommand
	Show   *ShowCommand
	Delete *DeleteCommand
	Status *StatusCommand
	Shell  *ShellCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "lifelog"
	parser.LongDescription = "A personal event journal: record timestamped entries, list them by day or range, search and delete them.\n\nWithout a subcommand lifelog starts the interactive shell."
	parser.SubcommandsOptional = true

	cmds := &commands{
		Add:    &AddCommand{globals: &globals, version: version},
		List:   &ListCommand{globals: &globals, version: version},
		Search: &SearchCommand{globals: &globals, version: version},
		Show:   &ShowCommand{globals: &globals, version: version},
		Delete: &DeleteCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
		Shell:  &ShellCommand{globals: &globals, version: version},
	}

	parser.AddCommand("add", "Record an entry", "Record one timestamped journal entry.", cmds.Add)
	parser.AddCommand("list", "List entries", "List entries for today, yesterday, everything, from a date onward, or for a date-or-keyword literal.", cmds.List)
	parser.AddCommand("search", "Search entries by keyword", "List entries whose text contains the keyword.", cmds.Search)
	parser.AddCommand("show", "Print one entry", "Print a single entry by ID.", cmds.Show)
	parser.AddCommand("delete", "Delete an entry", "Delete an entry by numeric ID. Deleting a missing ID is not an error.", cmds.Delete)
	parser.AddCommand("status", "Show database statistics", "Show the database location, size and entry statistics.", cmds.Status)
	parser.AddCommand("shell", "Interactive session", "Record entries line by line, then list and optionally delete them.", cmds.Shell)

	return parser, &globals, cmds
}

// Run is the main entry point for the lifelog CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand, falling back to the interactive shell.
func RunWithArgs(version string, args []string) error {
	parser, _, cmds := buildParser(version)

	// Handle a top-level --version before the parser so it works without a
	// subcommand and never falls through to the shell.
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	if versionRequested(parser, checkArgs) {
		fmt.Printf("lifelog %s\n", version)
		return nil
	}

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	if parser.Active == nil {
		if err := cmds.Shell.Execute(nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}

	return nil
}

// versionRequested reports whether --version appears among the global
// options, that is before "--" and before the subcommand name.
func versionRequested(parser *goflags.Parser, args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--version":
			return true
		case arg == "--":
			return false
		case parser.Find(arg) != nil:
			return false
		}
	}
	return false
}
