package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"notebook/internal/config"
	"notebook/internal/logs"
	"notebook/internal/notes"
	"notebook/internal/scanner"
	"notebook/internal/tui/theme"
)

// Renderer prints notebook output, styled when the destination supports it
type Renderer struct {
	out    io.Writer
	styles theme.Styles
	color  bool
}

// NewRenderer returns a renderer writing to out. mode is one of the
// config.Color* values; "auto" colors only when out is a terminal.
func NewRenderer(out io.Writer, mode string) *Renderer {
	lg := lipgloss.NewRenderer(out)
	switch mode {
	case config.ColorAlways:
		lg.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		styles: theme.NewStyles(lg),
		color:  lg.ColorProfile() != termenv.Ascii,
	}
}

// Colored reports whether output is styled
func (r *Renderer) Colored() bool {
	return r.color
}

// Println writes a plain line
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Note prints a note preceded by a "--- label: path ---" banner and followed
// by a blank line.
func (r *Renderer) Note(n notes.Note, content string) {
	fmt.Fprintln(r.out, r.styles.Section.Render(fmt.Sprintf("--- %s: %s ---", n.Label, filepath.ToSlash(n.RelPath))))

	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		r.markdown(content)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) markdown(content string) {
	if r.color {
		err := quick.Highlight(r.out, content, "markdown", "terminal256", theme.ChromaStyle)
		if err == nil {
			return
		}
		logs.Logger.WithError(err).Debug("highlighting failed, printing plain")
	}
	io.WriteString(r.out, content)
}

// Tasks prints one "path:line: text" row per task, paths relative to root
func (r *Renderer) Tasks(root string, tasks []scanner.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, "No uncompleted tasks found.")
		return
	}

	for _, t := range tasks {
		display := t.Path
		if rel, err := filepath.Rel(root, t.Path); err == nil && !strings.HasPrefix(rel, "..") {
			display = filepath.ToSlash(rel)
		}
		fmt.Fprintf(r.out, "%s%s %s\n",
			r.styles.Path.Render(display),
			r.styles.Muted.Render(fmt.Sprintf(":%d:", t.Line)),
			r.styles.Task.Render(t.Text))
	}
}

// Matches prints ranked find results, best first
func (r *Renderer) Matches(matches []notes.Match) {
	for i, m := range matches {
		marker := "  "
		if i == 0 {
			marker = r.styles.Ok.Render("> ")
		}
		fmt.Fprintf(r.out, "%s%s %s\n", marker, m.Display, r.styles.Muted.Render(filepath.ToSlash(m.Note.RelPath)))
	}
}

// Error prints an error line
func (r *Renderer) Error(msg string) {
	fmt.Fprintln(r.out, r.styles.Error.Render(msg))
}

// Warn prints a warning line
func (r *Renderer) Warn(msg string) {
	fmt.Fprintln(r.out, r.styles.Warn.Render(msg))
}
