package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/screens/play"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
	"github.com/syduan2016/space-math-adventure/internal/ui/theme"
)

// operations in tab order. Division and mixed sit last because they
// unlock late.
var operations = []facts.Operation{
	facts.Multiplication,
	facts.Addition,
	facts.Subtraction,
	facts.Division,
	facts.Mixed,
}

var operationNames = map[facts.Operation]string{
	facts.Multiplication: "MULTIPLY",
	facts.Addition:       "ADD",
	facts.Subtraction:    "SUBTRACT",
	facts.Division:       "DIVIDE",
	facts.Mixed:          "MIXED",
}

// LevelsScreen lets the pilot pick an operation and level for the
// next mission.
type LevelsScreen struct {
	ctrl     *game.Controller
	ledger   *facts.Ledger
	prog     *progress.Engine
	ach      *achievements.Engine
	practice bool

	opIndex  int
	level    int // selected level, 1-based
	rec      progress.Recommendation
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates a new LevelsScreen. With practice set, the launched
// session uses practice rules and saves nothing.
func New(ctrl *game.Controller, ledger *facts.Ledger, prog *progress.Engine, ach *achievements.Engine, practice bool) *LevelsScreen {
	rec := prog.RecommendedPractice(ledger)

	s := &LevelsScreen{
		ctrl:     ctrl,
		ledger:   ledger,
		prog:     prog,
		ach:      ach,
		practice: practice,
		level:    rec.Level,
	}
	for i, op := range operations {
		if op == rec.Operation {
			s.opIndex = i
			break
		}
	}
	s.rec = rec
	return s
}

func (s *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelsScreen) Title() string {
	if s.practice {
		return "Practice"
	}
	return "Mission Select"
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Operation"},
		{Key: "↑↓", Description: "Level"},
		{Key: "Enter", Description: "Launch"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelsScreen) operation() facts.Operation {
	return operations[s.opIndex]
}

// opUnlocked reports whether the operation tab is open at all.
func (s *LevelsScreen) opUnlocked(op facts.Operation) bool {
	switch op {
	case facts.Division:
		return s.prog.IsDivisionUnlocked()
	case facts.Mixed:
		return s.prog.IsMixedUnlocked()
	default:
		return true
	}
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.opIndex > 0 {
			s.opIndex--
			s.level = 1
		}
	case "right", "l":
		if s.opIndex < len(operations)-1 {
			s.opIndex++
			s.level = 1
		}
	case "up", "k":
		if s.level > 1 {
			s.level--
		}
	case "down", "j":
		if s.level < problemgen.MaxLevel {
			s.level++
		}
	case "enter":
		return s.launch()
	}

	return s, nil
}

func (s *LevelsScreen) launch() (screen.Screen, tea.Cmd) {
	op := s.operation()
	if !s.opUnlocked(op) || !s.prog.IsLevelUnlocked(op, s.level) {
		return s, nil
	}

	cfg := problemgen.BuildLevelConfig(op, s.level)
	cfg.PracticeMode = s.practice

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(s.ctrl, cfg)}
	}
}

func (s *LevelsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n\n")

	op := s.operation()
	if !s.opUnlocked(op) {
		b.WriteString(s.renderOpLocked(width, op))
		return b.String()
	}

	b.WriteString(s.renderLevels(width, op))

	if s.rec.Reason != "" {
		b.WriteString("\n")
		recLine := fmt.Sprintf("Suggested: %s level %d — %s",
			operationNames[s.rec.Operation], s.rec.Level, s.rec.Reason)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(recLine))
	}

	return b.String()
}

func (s *LevelsScreen) renderTabs(width int) string {
	var tabs []string
	for i, op := range operations {
		label := operationNames[op]
		if !s.opUnlocked(op) {
			label = "▒ " + label
		}

		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if i == s.opIndex {
			style = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Secondary).
				Bold(true).
				Padding(0, 1)
		} else if !s.opUnlocked(op) {
			style = theme.Locked.Padding(0, 1)
		}
		tabs = append(tabs, style.Render(label))
	}

	row := strings.Join(tabs, " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func (s *LevelsScreen) renderLevels(width int, op facts.Operation) string {
	var b strings.Builder

	for lvl := 1; lvl <= problemgen.MaxLevel; lvl++ {
		cfg := problemgen.BuildLevelConfig(op, lvl)
		entry := s.prog.EntryFor(op, lvl)
		unlocked := s.prog.IsLevelUnlocked(op, lvl)

		badge := "  "
		switch entry.Mastery {
		case progress.MasteryMastered:
			badge = lipgloss.NewStyle().Foreground(theme.StarYellow).Render("★ ")
		case progress.MasteryGood:
			badge = lipgloss.NewStyle().Foreground(theme.Success).Render("● ")
		}

		var detail string
		if entry.GamesPlayed > 0 {
			detail = fmt.Sprintf("%d games · %d%%", entry.GamesPlayed, entry.Accuracy)
		}

		line := fmt.Sprintf("%s%-18s %s", badge, cfg.Label, detail)

		switch {
		case !unlocked:
			line = fmt.Sprintf("░ %-18s", cfg.Label)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Locked.Render(line)))
		case lvl == s.level:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line)))
		default:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *LevelsScreen) renderOpLocked(width int, op facts.Operation) string {
	var hint string
	switch op {
	case facts.Division:
		hint = "Score 60% or better on a times table (4+) to unlock division."
	case facts.Mixed:
		hint = "Play three different operations to unlock mixed missions."
	}

	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(width).
		Render("░ Locked\n\n" + hint)
	return msg
}
