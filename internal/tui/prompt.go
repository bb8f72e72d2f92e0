package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notebook/internal/tui/theme"
)

// ErrCancelled is returned when the user leaves the prompt without submitting
var ErrCancelled = errors.New("append cancelled")

// AppendPromptModel is a multi-line entry box for text to append to a note
type AppendPromptModel struct {
	Input     textarea.Model
	Title     string
	Width     int
	Submitted bool
	Cancelled bool

	styles theme.Styles
}

// NewAppendPrompt creates a focused prompt titled with the note being appended to
func NewAppendPrompt(title string, styles theme.Styles) *AppendPromptModel {
	ta := textarea.New()
	ta.Placeholder = "- [ ] something to remember"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(6)
	ta.Focus()

	return &AppendPromptModel{
		Input:  ta,
		Title:  title,
		styles: styles,
	}
}

// Init implements tea.Model
func (m *AppendPromptModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *AppendPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// ctrl+d would otherwise delete forward inside the textarea
		switch msg.String() {
		case "ctrl+d":
			m.Submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.Cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *AppendPromptModel) View() string {
	if m.Submitted || m.Cancelled {
		return ""
	}

	content := m.styles.PromptTitle.Render(m.Title) + "\n"
	content += m.Input.View() + "\n"
	content += m.styles.PromptHelp.Render("[ctrl+d] append  [esc] cancel")

	return m.styles.PromptBox.Width(m.Width).Render(content)
}

// Value returns the text entered so far
func (m *AppendPromptModel) Value() string {
	return m.Input.Value()
}

// SetWidth sizes the box to w columns
func (m *AppendPromptModel) SetWidth(w int) {
	// border (2) and padding (2)
	m.Width = w - 4
	if m.Width < 20 {
		m.Width = 20
	}
	m.Input.SetWidth(m.Width - 2)
}

// PromptAppend runs the prompt on in/out and returns the submitted text
func PromptAppend(in io.Reader, out io.Writer, title string) (string, error) {
	styles := theme.NewStyles(lipgloss.NewRenderer(out))
	model := NewAppendPrompt(title, styles)

	p := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(*AppendPromptModel)
	if !m.Submitted {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
