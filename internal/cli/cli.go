package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"notebook/internal/proc"
	"notebook/internal/search"
	"notebook/internal/tui"
)

// Version is stamped at build time with -ldflags "-X notebook/internal/cli.Version=..."
var Version = "dev"

// appendFromInput is the value --append takes when given without text
const appendFromInput = "-"

// App carries the process collaborators so tests can swap them out
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Runner proc.Runner
	Now    func() time.Time

	// Interactive reports whether append text should be asked for with a prompt
	Interactive func() bool
	// Prompt asks the user for append text
	Prompt func(title string) (string, error)
}

// NewApp returns an App bound to the real terminal and process table
func NewApp() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: proc.Exec{},
		Now:    time.Now,
		Interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		Prompt: func(title string) (string, error) {
			return tui.PromptAppend(os.Stdin, os.Stderr, title)
		},
	}
}

type options struct {
	root   string
	editor string

	daily   bool
	monthly bool
	yearly  bool
	someday bool
	search  string
	find    string

	appendText string

	searchScopes        []string
	searchRegex         bool
	searchCaseSensitive bool

	sync    bool
	tasks   bool
	current bool
	version bool
}

// selection returns the note picked with -d/-m/-y/-s, or ""
func (o *options) selection() string {
	switch {
	case o.daily:
		return "daily"
	case o.monthly:
		return "monthly"
	case o.yearly:
		return "yearly"
	case o.someday:
		return "someday"
	}
	return ""
}

// Run executes the CLI with the given arguments and returns the exit code
func Run(args []string, app *App) int {
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(app.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the notebook command
func NewRootCommand(app *App) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "notebook [flags] [append text...]",
		Short: "Manage rolling Markdown notebook files",
		Long: `Manage rolling Markdown notebook files.

Daily, monthly and yearly notes are created on first use and seeded with the
unfinished items of the most recent earlier note. The someday note holds
everything without a date.`,
		Example: `  notebook -d                       open today's note
  notebook -m --append "- [ ] pay rent"
  echo "idea" | notebook -s --append
  notebook -q groceries --search-scope daily
  notebook --tasks --sync`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd, o, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, o, args)
		},
	}
	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&o.root, "root", "", "notebook directory (default: $EZ_NB_ROOT, config file, or ~/notebook)")
	f.StringVar(&o.editor, "editor", "", "command to open notes (falls back to $EDITOR or nvim)")

	f.BoolVarP(&o.daily, "daily", "d", false, "open today's note")
	f.BoolVarP(&o.monthly, "monthly", "m", false, "open this month's note")
	f.BoolVarP(&o.yearly, "yearly", "y", false, "open this year's note")
	f.BoolVarP(&o.someday, "someday", "s", false, "open the someday note")
	f.StringVarP(&o.search, "search", "q", "", "search notebook contents for `QUERY`")
	f.StringVarP(&o.find, "find", "f", "", "open the note whose name or heading best matches `QUERY`")
	cmd.MarkFlagsMutuallyExclusive("daily", "monthly", "yearly", "someday", "search", "find")

	f.StringVar(&o.appendText, "append", "", "append `TEXT` to the selected note instead of opening it (reads stdin when omitted)")
	f.Lookup("append").NoOptDefVal = appendFromInput

	f.StringSliceVar(&o.searchScopes, "search-scope", nil, "limit search to sections: "+strings.Join(search.Scopes, ", "))
	f.BoolVar(&o.searchRegex, "search-regex", false, "treat the search query as a regular expression")
	f.BoolVar(&o.searchCaseSensitive, "search-case-sensitive", false, "perform a case-sensitive search")

	f.BoolVar(&o.sync, "sync", false, "sync notebook changes with the git remote")
	f.BoolVar(&o.tasks, "tasks", false, "list uncompleted tasks across notes")
	f.BoolVar(&o.current, "current", false, "print the current daily, monthly, yearly and someday notes")
	f.BoolVarP(&o.version, "version", "V", false, "print the version and exit")

	return cmd
}

// validate rejects flag combinations before anything touches the disk
func validate(cmd *cobra.Command, o *options, args []string) error {
	appendMode := cmd.Flags().Changed("append")

	if appendMode && (o.search != "" || o.find != "") {
		return errors.New("--append cannot be used together with --search or --find")
	}
	if appendMode && o.selection() == "" {
		return errors.New("--append requires one of --daily, --monthly, --yearly, or --someday")
	}
	if !appendMode && len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}
	if cmd.Flags().Changed("search") && strings.TrimSpace(o.search) == "" {
		return errors.New("--search needs a non-empty query")
	}
	if cmd.Flags().Changed("find") && strings.TrimSpace(o.find) == "" {
		return errors.New("--find needs a non-empty query")
	}

	for _, scope := range o.searchScopes {
		if !search.ValidScope(scope) {
			return fmt.Errorf("invalid --search-scope %q (choose from %s)", scope, strings.Join(search.Scopes, ", "))
		}
	}
	return nil
}
