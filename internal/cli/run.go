package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"notebook/internal/config"
	"notebook/internal/editor"
	"notebook/internal/gitsync"
	"notebook/internal/logs"
	"notebook/internal/notes"
	"notebook/internal/scanner"
	"notebook/internal/search"
	"notebook/internal/tui"
)

// maxFindResults caps the candidate list printed by --find
const maxFindResults = 5

func run(cmd *cobra.Command, app *App, o *options, args []string) error {
	cfg, err := config.Load(config.CLIFlags{Root: o.root, Editor: o.editor})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out := tui.NewRenderer(app.Stdout, cfg.Color)
	errOut := tui.NewRenderer(app.Stderr, cfg.Color)

	var appendText *string
	if cmd.Flags().Changed("append") {
		text, err := readAppendText(app, o, args)
		if errors.Is(err, tui.ErrCancelled) {
			errOut.Warn("Append cancelled.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read append text: %w", err)
		}
		appendText = &text
	}

	if err := config.EnsureConfigFile(); err != nil {
		errOut.Warn(fmt.Sprintf("Warning: could not create config file: %v", err))
	}
	if err := logs.Initialize(cfg.LogDir); err != nil {
		errOut.Warn(fmt.Sprintf("Warning: could not initialize logger: %v", err))
	}
	defer logs.Close()

	if err := cfg.EnsureRoot(); err != nil {
		return fmt.Errorf("create notebook directory %s: %w", cfg.Root, err)
	}

	logs.Logger.WithField("root", cfg.Root).Debug("starting")

	performed := false

	if o.tasks {
		tasks, err := scanner.CollectUncompletedTasks(cfg.Root, scanner.Options{Ignore: cfg.TaskIgnore})
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		out.Tasks(cfg.Root, tasks)
		performed = true
	}

	if o.current {
		if err := printCurrent(app, out, cfg.Root); err != nil {
			return err
		}
		performed = true
	}

	switch {
	case o.selection() != "":
		if err := openSelection(app, out, errOut, cfg, o.selection(), appendText); err != nil {
			return err
		}
		performed = true
	case o.search != "":
		runSearch(app, out, cfg.Root, o)
		performed = true
	case o.find != "":
		if err := runFind(app, out, errOut, cfg, o.find); err != nil {
			return err
		}
		performed = true
	}

	if !performed && !o.sync {
		return cmd.Help()
	}

	if o.sync {
		syncer := &gitsync.Syncer{Runner: app.Runner, Out: app.Stdout, Now: app.Now}
		if err := syncer.Sync(cfg.Root); err != nil {
			errOut.Error(err.Error())
		}
	}

	return nil
}

// readAppendText joins --append=TEXT with any trailing arguments. With
// neither, the text comes from the prompt on a terminal or stdin otherwise.
func readAppendText(app *App, o *options, args []string) (string, error) {
	var parts []string
	if o.appendText != appendFromInput {
		parts = append(parts, o.appendText)
	}
	parts = append(parts, args...)
	if len(parts) > 0 {
		return strings.Join(parts, " "), nil
	}

	if app.Interactive != nil && app.Interactive() {
		return app.Prompt(fmt.Sprintf("Append to the %s note", o.selection()))
	}

	data, err := io.ReadAll(app.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printCurrent(app *App, out *tui.Renderer, root string) error {
	current, err := notes.Current(root, app.Now())
	if err != nil {
		return fmt.Errorf("prepare current notes: %w", err)
	}

	for _, n := range current {
		content, err := os.ReadFile(n.Path)
		if err != nil {
			logs.Logger.WithError(err).WithField("path", n.Path).Debug("could not read note")
		}
		out.Note(n, string(content))
	}
	return nil
}

// openSelection prepares the selected note and then either appends to it or
// hands it to the editor.
func openSelection(app *App, out, errOut *tui.Renderer, cfg config.Config, selection string, appendText *string) error {
	path, err := notes.Resolve(selection, cfg.Root, app.Now())
	if err != nil {
		return fmt.Errorf("prepare %s note: %w", selection, err)
	}

	if appendText != nil {
		err := notes.Append(path, *appendText)
		switch {
		case errors.Is(err, notes.ErrNoContent):
			errOut.Error("No content provided to append.")
		case err != nil:
			return err
		default:
			out.Println("Appended entry to " + path)
		}
		return nil
	}

	if err := editor.Open(app.Runner, cfg.Editor, path); err != nil {
		errOut.Error(err.Error())
	}
	return nil
}

func runSearch(app *App, out *tui.Renderer, root string, o *options) {
	result := search.Notebook(app.Runner, search.Query{
		Text:          o.search,
		Root:          root,
		Scopes:        o.searchScopes,
		Regex:         o.searchRegex,
		CaseSensitive: o.searchCaseSensitive,
	}, app.Stdout)

	switch {
	case result.NoMatches():
		out.Println("No matches found.")
	case result.Failed():
		out.Println("Search failed.")
	}
}

// runFind opens the note whose name or heading best matches query
func runFind(app *App, out, errOut *tui.Renderer, cfg config.Config, query string) error {
	matches, err := notes.Find(cfg.Root, query)
	if err != nil {
		return fmt.Errorf("find notes: %w", err)
	}
	if len(matches) == 0 {
		out.Println("No notes match.")
		return nil
	}

	if len(matches) > maxFindResults {
		matches = matches[:maxFindResults]
	}
	out.Matches(matches)

	if err := editor.Open(app.Runner, cfg.Editor, matches[0].Note.Path); err != nil {
		errOut.Error(err.Error())
	}
	return nil
}
