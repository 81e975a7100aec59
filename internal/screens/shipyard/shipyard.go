package shipyard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/hangar"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// ShipyardScreen lets the pilot spend stars on ships and pick the one
// to fly.
type ShipyardScreen struct {
	hang     *hangar.Hangar
	prog     *progress.Engine
	selected int
	notice   string
}

var _ screen.Screen = (*ShipyardScreen)(nil)
var _ screen.KeyHintProvider = (*ShipyardScreen)(nil)

// New creates a new ShipyardScreen.
func New(hang *hangar.Hangar, prog *progress.Engine) *ShipyardScreen {
	return &ShipyardScreen{hang: hang, prog: prog}
}

func (s *ShipyardScreen) Init() tea.Cmd {
	return nil
}

func (s *ShipyardScreen) Title() string {
	return "Hangar"
}

func (s *ShipyardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Buy / Equip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShipyardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
			s.notice = ""
		}
	case "down", "j":
		if s.selected < len(hangar.Catalog)-1 {
			s.selected++
			s.notice = ""
		}
	case "enter":
		s.activate()
	}
	return s, nil
}

// activate buys the selected ship when it is still locked, otherwise
// equips it.
func (s *ShipyardScreen) activate() {
	ship := hangar.Catalog[s.selected]

	if !s.hang.Unlocked(ship.ID) {
		if !s.hang.Buy(ship.ID) {
			s.notice = fmt.Sprintf("Not enough stars — %s costs ★ %d.", ship.Name, ship.Cost)
			return
		}
		s.notice = fmt.Sprintf("%s delivered to the hangar!", ship.Name)
		return
	}

	if s.hang.Equip(ship.ID) {
		s.notice = fmt.Sprintf("%s is ready for launch.", ship.Name)
	}
}

func (s *ShipyardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.StarYellow).
		Bold(true).
		Render(fmt.Sprintf("★ %d stars to spend", s.prog.Profile().TotalStars)))
	b.WriteString("\n\n")

	for i, ship := range hangar.Catalog {
		owned := s.hang.Unlocked(ship.ID)
		equipped := s.hang.Equipped() == ship.ID

		var status string
		switch {
		case equipped:
			status = lipgloss.NewStyle().Foreground(theme.Success).Render("EQUIPPED")
		case owned:
			status = lipgloss.NewStyle().Foreground(theme.Secondary).Render("owned")
		default:
			status = lipgloss.NewStyle().Foreground(theme.StarYellow).Render(fmt.Sprintf("★ %d", ship.Cost))
		}

		line := fmt.Sprintf("%-12s %s", ship.Name, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !owned {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
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

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	}

	return b.String()
}
