package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/ui/components"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.feedback != nil {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderHUD shows lives, score, combo, and question progress on one
// line with a progress bar underneath.
func (s *PlayScreen) renderHUD(width int) string {
	lives := s.ctrl.Lives()
	hearts := strings.Repeat("♥ ", lives)
	if lives == 0 {
		hearts = "—"
	}

	left := lipgloss.NewStyle().
		Foreground(theme.LifeRed).
		Bold(true).
		Render("  " + strings.TrimRight(hearts, " "))

	comboStr := ""
	if s.ctrl.Combo() >= 3 {
		comboStr = fmt.Sprintf("  COMBO x%d", s.ctrl.Combo())
	}

	right := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("SCORE %d%s  ", s.ctrl.Score(), comboStr))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right

	answered := s.cfg.QuestionsPerGame - s.ctrl.QuestionsRemaining()
	pct := 0.0
	if s.cfg.QuestionsPerGame > 0 {
		pct = float64(answered) / float64(s.cfg.QuestionsPerGame)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("  Q %d/%d", answered+1, s.cfg.QuestionsPerGame),
		pct, false, width-6)

	return line + "\n" + bar.View() + "\n"
}

func (s *PlayScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(s.renderHUD(width))
	b.WriteString("\n")

	if s.question == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Scanning for incoming problems..."))
		return b.String()
	}

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.question.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.hintsShown > 0 {
		hints := s.ctrl.Hints()
		b.WriteString("\n")
		for i := 0; i < s.hintsShown && i < len(hints); i++ {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("✧ "+hints[i])))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *PlayScreen) renderFeedback(width int) string {
	fb := s.feedback

	var b strings.Builder
	b.WriteString(s.renderHUD(width))
	b.WriteString("\n\n")

	if fb.Outcome.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Direct hit!  +%d", fb.PointsEarned)))
		if fb.Outcome.EarnedSpeedBonus {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.StarYellow).
				Render("⚡ speed bonus"))
		}
		if fb.PerfectBonus > 0 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.StarYellow).
				Bold(true).
				Render(fmt.Sprintf("★ PERFECT ROUND  +%d", fb.PerfectBonus)))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Missed!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was %d", fb.Outcome.CorrectAnswer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abort the mission?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The session ends and the score so far counts."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abort"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep flying"))

	return b.String()
}
