package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// MultiChoice is the answer selector for a question. Choices are
// numeric; number keys pick and submit in one stroke.
type MultiChoice struct {
	Choices       []int
	CorrectAnswer int
	Selected      int
	Submitted     bool
	ChosenIndex   int
}

// NewMultiChoice creates a selector over the question's choices.
func NewMultiChoice(choices []int, correctAnswer int) MultiChoice {
	return MultiChoice{
		Choices:       choices,
		CorrectAnswer: correctAnswer,
		Selected:      0,
		ChosenIndex:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection. Number keys 1-4 select and
// submit in one stroke; enter submits the highlighted choice.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Choices) {
			m.Selected = n - 1
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// View renders the choices, revealing correct and wrong picks once
// submitted.
func (m MultiChoice) View() string {
	var s string
	for i, choice := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, choice)

		switch {
		case m.Submitted && choice == m.CorrectAnswer:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the chosen answer, or 0 when nothing was submitted.
func (m MultiChoice) Value() int {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Choices) {
		return 0
	}
	return m.Choices[m.ChosenIndex]
}

// IsCorrect returns true if the chosen answer is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Value() == m.CorrectAnswer
}
