package achievevault

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// VaultScreen lists every achievement with its unlocked state.
type VaultScreen struct {
	ach      *achievements.Engine
	selected int
}

var _ screen.Screen = (*VaultScreen)(nil)
var _ screen.KeyHintProvider = (*VaultScreen)(nil)

// New creates a new VaultScreen.
func New(ach *achievements.Engine) *VaultScreen {
	return &VaultScreen{ach: ach}
}

func (s *VaultScreen) Init() tea.Cmd {
	return nil
}

func (s *VaultScreen) Title() string {
	return "Achievements"
}

func (s *VaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(achievements.All)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *VaultScreen) View(width, height int) string {
	var b strings.Builder

	unlockedCount := 0
	for _, a := range achievements.All {
		if s.ach.Unlocked(a.ID) {
			unlockedCount++
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", unlockedCount, len(achievements.All))))
	b.WriteString("\n\n")

	for i, a := range achievements.All {
		unlocked := s.ach.Unlocked(a.ID)

		var line string
		if unlocked {
			when := ""
			if at := s.ach.UnlockedAt(a.ID); !at.IsZero() {
				when = "  " + at.Format("Jan 2")
			}
			line = fmt.Sprintf("%s  %-18s %s  +%d ★%s", a.Icon, a.Name, a.Description, a.Stars, when)
		} else {
			line = fmt.Sprintf("▒  %-18s %s  +%d ★", a.Name, a.Description, a.Stars)
		}

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if unlocked {
			style = lipgloss.NewStyle().Foreground(theme.StarYellow)
		}
		if i == s.selected {
			style = style.Bold(true)
			line = "▸ " + line
		} else {
			line = "  " + line
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
