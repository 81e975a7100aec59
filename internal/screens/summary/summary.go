package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// SummaryScreen displays the end-of-session report.
type SummaryScreen struct {
	sum game.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum game.Summary) *SummaryScreen {
	return &SummaryScreen{sum: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Mission Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// starRow renders earned stars against the three possible.
func starRow(earned int) string {
	full := lipgloss.NewStyle().Foreground(theme.StarYellow).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.Border)

	var parts []string
	for i := 0; i < 3; i++ {
		if i < earned {
			parts = append(parts, full.Render("★"))
		} else {
			parts = append(parts, dim.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.sum.Result
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if res.LivesRemaining <= 0 {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "SHIP DOWN")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Every pilot crashes sometimes. Fly again!")
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "MISSION COMPLETE")
	}
	b.WriteString("\n")

	center(lipgloss.NewStyle(), starRow(res.Stars))
	b.WriteString("\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	center(scoreStyle, fmt.Sprintf("SCORE  %d", res.Score))
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Hits: %d/%d        Accuracy: %d%%        Best combo: x%d",
		res.CorrectAnswers, res.QuestionsAnswered, res.Accuracy, res.MaxCombo)
	center(lipgloss.NewStyle().Foreground(theme.Text), statsLine)

	if res.SpeedBonuses > 0 {
		center(lipgloss.NewStyle().Foreground(theme.StarYellow),
			fmt.Sprintf("⚡ %d speed bonuses", res.SpeedBonuses))
	}
	b.WriteString("\n")

	if res.PracticeMode {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"Practice flight — progress not saved")
		return b.String()
	}

	// Level mastery change.
	if t := s.sum.Save.Transition; t.Changed {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Level rank: %s → %s", t.Old, t.New))
	}
	if s.sum.Save.StarsEarned > 0 {
		center(lipgloss.NewStyle().Foreground(theme.StarYellow),
			fmt.Sprintf("★ +%d stars — total %d", s.sum.Save.StarsEarned, s.sum.TotalStars))
	}

	// Freshly unlocked achievements.
	if len(s.sum.Unlocked) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Achievements")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range s.sum.Unlocked {
			line := fmt.Sprintf("%s  %s — %s  (+%d ★)", a.Icon, a.Name, a.Description, a.Stars)
			center(lipgloss.NewStyle().Foreground(theme.StarYellow), line)
		}
	}

	// Missed questions recap.
	if len(res.WrongAnswers) > 0 {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Ones that got away")
		for _, q := range res.WrongAnswers {
			center(lipgloss.NewStyle().Foreground(theme.Error),
				fmt.Sprintf("%s %d", q.Text, q.CorrectAnswer))
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
