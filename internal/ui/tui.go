package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-pairs/internal/config"
	"go-pairs/internal/engine"
)

// Model is the Bubble Tea front end. It forwards one submitted line per
// Enter press to the engine and redraws from a fresh snapshot.
type Model struct {
	engine *engine.Engine
	input  textinput.Model
	theme  config.Theme

	errStyle    lipgloss.Style
	scoreStyle  lipgloss.Style
	boardStyle  lipgloss.Style
	promptStyle lipgloss.Style
}

// NewModel creates the TUI model around an engine.
func NewModel(e *engine.Engine, theme config.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Focus()

	return Model{
		engine:      e,
		input:       ti,
		theme:       theme,
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorColor)),
		scoreStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ScoreColor)),
		boardStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.BoardColor)),
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PromptColor)),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.engine.Advance(m.input.Value())
			m.input.SetValue("")
			if !m.engine.IsRunning() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	switch snap.State {
	case engine.StateGuess, engine.StateCorrectGuess, engine.StateIncorrectGuess, engine.StateVictory:
		b.WriteString(m.scoreStyle.Render(strings.TrimRight(ScoreView(snap), "\n")))
		b.WriteString("\n\n")
		b.WriteString(m.boardStyle.Render(strings.TrimRight(BoardView(snap, m.theme), "\n")))
		b.WriteString("\n\n")
	}

	if snap.State == engine.StateVictory {
		b.WriteString(m.scoreStyle.Render(strings.TrimRight(StatsView(snap), "\n")))
		b.WriteString("\n")
	}

	if snap.Message != "" {
		b.WriteString(m.errStyle.Render("(!) " + snap.Message))
		b.WriteString("\n")
	}

	b.WriteString(m.promptStyle.Render(PromptFor(snap.State)))
	b.WriteString("\n")

	if snap.ShowPrompt || snap.State == engine.StateWelcome {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	return b.String()
}
