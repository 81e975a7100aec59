package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// pageSize is how many flights show per page.
const pageSize = 12

// HistoryScreen displays the recent session log, newest first.
type HistoryScreen struct {
	prog    *progress.Engine
	entries []progress.HistoryEntry
	offset  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(prog *progress.Engine) *HistoryScreen {
	return &HistoryScreen{
		prog:    prog,
		entries: prog.History(0),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Flight Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.entries)-pageSize {
			s.offset++
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo flights logged yet. Launch a mission!")
	}

	b.WriteString("\n")
	end := s.offset + pageSize
	if end > len(s.entries) {
		end = len(s.entries)
	}

	for _, e := range s.entries[s.offset:end] {
		stars := strings.Repeat("★", e.Stars)
		if stars == "" {
			stars = "—"
		}

		line := fmt.Sprintf("%s  %-14s L%d   %5d pts   %3d%%   %s",
			e.Date.Format("Jan 02 15:04"),
			e.Operation, e.Level, e.Score, e.Accuracy,
			lipgloss.NewStyle().Foreground(theme.StarYellow).Render(stars))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if len(s.entries) > pageSize {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d-%d of %d", s.offset+1, end, len(s.entries))))
	}

	return b.String()
}
