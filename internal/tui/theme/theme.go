package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette, ANSI 0-15
// ---------------------------------------------------------------------------

var (
	Text      = lipgloss.Color("7")
	TextMuted = lipgloss.Color("8")

	Primary   = lipgloss.Color("4") // blue
	Secondary = lipgloss.Color("6") // cyan
	Success   = lipgloss.Color("2") // green
	Warning   = lipgloss.Color("3") // yellow
	Danger    = lipgloss.Color("1") // red
	Border    = lipgloss.Color("8") // dim
)

// ChromaStyle is the chroma style used to highlight note bodies
const ChromaStyle = "monokai"

// Styles are bound to a renderer so that color detection follows the stream
// they are written to rather than stdout.
type Styles struct {
	Section lipgloss.Style
	Path    lipgloss.Style
	Task    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warn    lipgloss.Style
	Ok      lipgloss.Style

	PromptBox   lipgloss.Style
	PromptTitle lipgloss.Style
	PromptHelp  lipgloss.Style
}

// NewStyles builds the semantic styles for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Section: r.NewStyle().Bold(true).Foreground(Primary),
		Path:    r.NewStyle().Foreground(Secondary),
		Task:    r.NewStyle().Foreground(Text),
		Muted:   r.NewStyle().Foreground(TextMuted),
		Error:   r.NewStyle().Bold(true).Foreground(Danger),
		Warn:    r.NewStyle().Bold(true).Foreground(Warning),
		Ok:      r.NewStyle().Bold(true).Foreground(Success),

		PromptBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1),
		PromptTitle: r.NewStyle().Bold(true).Foreground(Warning),
		PromptHelp:  r.NewStyle().Foreground(TextMuted),
	}
}
