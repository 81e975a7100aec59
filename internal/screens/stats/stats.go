package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/ui/components"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// trendDays is the lookback window for the improvement trend.
const trendDays = 7

// StatsScreen shows the pilot profile, per-operation progress, and
// practice pointers.
type StatsScreen struct {
	ledger *facts.Ledger
	prog   *progress.Engine

	renaming bool
	input    components.TextInput
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(ledger *facts.Ledger, prog *progress.Engine) *StatsScreen {
	return &StatsScreen{
		ledger: ledger,
		prog:   prog,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Pilot Stats"
}

// HandlesEsc is true while the rename prompt is open.
func (s *StatsScreen) HandlesEsc() bool {
	return s.renaming
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.renaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Rename pilot"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.renaming {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.renaming {
		switch kmsg.String() {
		case "enter":
			s.prog.Rename(s.input.Value())
			s.renaming = false
			return s, nil
		case "esc":
			s.renaming = false
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "r", "R":
		s.renaming = true
		s.input = components.NewTextInput(s.prog.Profile().Name, false, 24)
		return s, s.input.Init()
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	profile := s.prog.Profile()
	overall := s.prog.Stats()

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.renaming {
		center(lipgloss.NewStyle().Foreground(theme.Text), "New pilot name: "+s.input.View())
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "PILOT  "+profile.Name)
	}
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Text), fmt.Sprintf(
		"Games: %d    Questions: %d    Accuracy: %d%%    ★ %d",
		overall.TotalGames, overall.TotalQuestions, overall.OverallAccuracy, overall.TotalStars))
	center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf(
		"Levels mastered: %d    good: %d", overall.LevelsMastered, overall.LevelsGood))
	b.WriteString("\n")

	b.WriteString(s.renderOperations(width))

	// Trend for the most played operation.
	if op, level, ok := s.mostPlayed(); ok {
		trend := s.prog.ImprovementTrend(op, level, trendDays)
		if trend.Sessions > 0 {
			var arrow string
			switch trend.Direction {
			case "improving":
				arrow = lipgloss.NewStyle().Foreground(theme.Success).Render("▲ improving")
			case "declining":
				arrow = lipgloss.NewStyle().Foreground(theme.Error).Render("▼ declining")
			default:
				arrow = lipgloss.NewStyle().Foreground(theme.TextDim).Render("► steady")
			}
			center(lipgloss.NewStyle().Foreground(theme.Text), fmt.Sprintf(
				"%s level %d this week: %s (%d%% avg)",
				op, level, arrow, trend.CurrentAverage))
		}
	}

	// Weakest facts.
	weak := s.ledger.WeakestFacts(3, "")
	if len(weak) > 0 {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Facts to drill")
		for _, f := range weak {
			center(lipgloss.NewStyle().Foreground(theme.Accent), fmt.Sprintf(
				"%s  (%d%% over %d tries)", f.Key, int(f.Record.Accuracy()), f.Record.Attempts))
		}
	}

	rec := s.prog.RecommendedPractice(s.ledger)
	b.WriteString("\n")
	center(theme.Hint, fmt.Sprintf("Next up: %s level %d — %s",
		rec.Operation, rec.Level, rec.Reason))

	return b.String()
}

// renderOperations prints one row per operation with level mastery
// dots.
func (s *StatsScreen) renderOperations(width int) string {
	var b strings.Builder

	ops := []facts.Operation{
		facts.Multiplication, facts.Addition, facts.Subtraction,
		facts.Division, facts.Mixed,
	}

	for _, op := range ops {
		var dots []string
		games := 0
		for lvl := 1; lvl <= problemgen.MaxLevel; lvl++ {
			entry := s.prog.EntryFor(op, lvl)
			games += entry.GamesPlayed
			switch entry.Mastery {
			case progress.MasteryMastered:
				dots = append(dots, lipgloss.NewStyle().Foreground(theme.StarYellow).Render("★"))
			case progress.MasteryGood:
				dots = append(dots, lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
			default:
				if entry.GamesPlayed > 0 {
					dots = append(dots, lipgloss.NewStyle().Foreground(theme.Secondary).Render("◐"))
				} else {
					dots = append(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("·"))
				}
			}
		}

		line := fmt.Sprintf("%-14s %s   %d games", string(op), strings.Join(dots, " "), games)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// mostPlayed finds the (operation, level) with the most games for the
// trend readout.
func (s *StatsScreen) mostPlayed() (facts.Operation, int, bool) {
	ops := []facts.Operation{
		facts.Multiplication, facts.Addition, facts.Subtraction,
		facts.Division, facts.Mixed,
	}

	var bestOp facts.Operation
	bestLevel, bestGames := 0, 0
	for _, op := range ops {
		for lvl := 1; lvl <= problemgen.MaxLevel; lvl++ {
			if g := s.prog.EntryFor(op, lvl).GamesPlayed; g > bestGames {
				bestOp, bestLevel, bestGames = op, lvl, g
			}
		}
	}
	return bestOp, bestLevel, bestGames > 0
}
