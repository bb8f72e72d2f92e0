package search

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"notebook/internal/logs"
	"notebook/internal/proc"
)

// Exit codes reported in Result
const (
	ExitMatched     = 0
	ExitNoMatches   = 1
	ExitRootMissing = 2
	ExitNotFound    = 127
)

// Scopes lists the sections a search can be limited to
var Scopes = []string{"root", "daily", "monthly", "yearly"}

// Query describes one search over the notebook
type Query struct {
	Text          string
	Root          string
	Scopes        []string
	Regex         bool
	CaseSensitive bool
}

// Result is the outcome of a search. ExitCode follows ripgrep: 0 when
// something matched, 1 when nothing did, anything else on failure.
type Result struct {
	Matched  bool
	ExitCode int
}

// NoMatches reports whether the search ran fine but found nothing
func (r Result) NoMatches() bool {
	return r.ExitCode == ExitNoMatches
}

// Failed reports whether the search could not be carried out
func (r Result) Failed() bool {
	return r.ExitCode != ExitMatched && r.ExitCode != ExitNoMatches
}

// ValidScope reports whether name is one of Scopes
func ValidScope(name string) bool {
	for _, s := range Scopes {
		if s == name {
			return true
		}
	}
	return false
}

// Notebook runs ripgrep over the notebook's markdown files. Matches are
// written straight to the terminal; diagnostics go to msg.
func Notebook(r proc.Runner, q Query, msg io.Writer) Result {
	if _, err := os.Stat(q.Root); err != nil {
		fmt.Fprintf(msg, "Notebook directory %s does not exist.\n", q.Root)
		return Result{ExitCode: ExitRootMissing}
	}

	args := Args(q)
	logs.Logger.WithField("args", args).Debug("running ripgrep")

	code, err := r.Run(proc.Cmd{Name: "rg", Args: args, Dir: q.Root})
	if err != nil {
		if errors.Is(err, proc.ErrNotFound) {
			fmt.Fprintln(msg, "ripgrep (rg) is required for search, but it was not found on PATH.")
			return Result{ExitCode: ExitNotFound}
		}
		fmt.Fprintf(msg, "Failed to run ripgrep: %v\n", err)
		return Result{ExitCode: -1}
	}

	return Result{Matched: code == ExitMatched, ExitCode: code}
}

// Args builds the ripgrep argument list for q. Paths are relative to q.Root.
func Args(q Query) []string {
	args := []string{"--with-filename", "--line-number", "-g", "*.md"}
	if !q.Regex {
		args = append(args, "--fixed-strings")
	}
	if !q.CaseSensitive {
		args = append(args, "--ignore-case")
	}
	// Keep a leading dash in the query from being read as a flag.
	args = append(args, "-e", q.Text)

	for _, path := range searchPaths(q.Root, q.Scopes) {
		rel, err := filepath.Rel(q.Root, path)
		if err != nil {
			rel = path
		}
		args = append(args, rel)
	}
	return args
}

// searchPaths maps scope names to existing directories under root. Unknown
// or missing scopes are dropped; when nothing is left the whole root is used.
func searchPaths(root string, scopes []string) []string {
	if len(scopes) == 0 {
		return []string{root}
	}

	var paths []string
	seen := make(map[string]bool)
	for _, scope := range scopes {
		var target string
		switch scope {
		case "root":
			target = root
		case "daily", "monthly", "yearly":
			target = filepath.Join(root, scope)
		default:
			continue
		}
		if seen[target] {
			continue
		}
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			seen[target] = true
			paths = append(paths, target)
		}
	}

	if len(paths) == 0 {
		return []string{root}
	}
	return paths
}
