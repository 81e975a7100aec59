package levels

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screens/play"
	"github.com/syduan2016/space-math-adventure/internal/session"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

func newTestLevels(t *testing.T, practice bool) (*LevelsScreen, *progress.Engine) {
	t.Helper()
	st := storage.OpenMemory()
	rng := rand.New(rand.NewPCG(3, 9))
	prog := progress.NewEngine(st, rng)
	ledger := facts.Open(st)
	t.Cleanup(ledger.Close)
	ach := achievements.NewEngine(st, prog)
	ctrl := game.NewController(ledger, prog, ach, rng)

	return New(ctrl, ledger, prog, ach, practice), prog
}

func press(s *LevelsScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestFreshProfileStartsAtMultiplication(t *testing.T) {
	s, _ := newTestLevels(t, false)

	if s.operation() != facts.Multiplication {
		t.Errorf("operation = %s, want multiplication", s.operation())
	}
	if s.level != 1 {
		t.Errorf("level = %d, want 1", s.level)
	}
}

func TestNavigation(t *testing.T) {
	s, _ := newTestLevels(t, false)

	press(s, tea.KeyRight)
	if s.operation() != facts.Addition {
		t.Errorf("operation = %s, want addition", s.operation())
	}

	press(s, tea.KeyDown)
	press(s, tea.KeyDown)
	if s.level != 3 {
		t.Errorf("level = %d, want 3", s.level)
	}

	// switching operation resets the level cursor
	press(s, tea.KeyLeft)
	if s.level != 1 {
		t.Errorf("level = %d after op switch, want 1", s.level)
	}
}

func TestLaunchPushesPlayScreen(t *testing.T) {
	s, _ := newTestLevels(t, false)

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*play.PlayScreen); !ok {
		t.Errorf("pushed %T, want *play.PlayScreen", msg.Screen)
	}
}

func TestLockedLevelDoesNotLaunch(t *testing.T) {
	s, _ := newTestLevels(t, false)

	// Levels beyond 3 stay locked on a fresh profile.
	for i := 0; i < 4; i++ {
		press(s, tea.KeyDown)
	}
	if s.level != 5 {
		t.Fatalf("level = %d, want 5", s.level)
	}

	if cmd := press(s, tea.KeyEnter); cmd != nil {
		t.Error("locked level should not launch")
	}
}

func TestLockedOperationDoesNotLaunch(t *testing.T) {
	s, _ := newTestLevels(t, false)

	// Move to the division tab, locked until a times table is solid.
	press(s, tea.KeyRight)
	press(s, tea.KeyRight)
	press(s, tea.KeyRight)
	if s.operation() != facts.Division {
		t.Fatalf("operation = %s, want division", s.operation())
	}

	if cmd := press(s, tea.KeyEnter); cmd != nil {
		t.Error("locked operation should not launch")
	}
}

func TestDivisionUnlocksAfterQualifyingTable(t *testing.T) {
	s, prog := newTestLevels(t, false)

	prog.SaveGameSession(session.Result{
		Operation:         facts.Multiplication,
		Level:             5,
		Table:             5,
		Accuracy:          90,
		QuestionsAnswered: 12,
		CorrectAnswers:    11,
		Stars:             3,
	})

	press(s, tea.KeyRight)
	press(s, tea.KeyRight)
	press(s, tea.KeyRight)
	if cmd := press(s, tea.KeyEnter); cmd == nil {
		t.Error("division should launch once a table qualifies")
	}
}

func TestPracticeFlagCarriesIntoConfig(t *testing.T) {
	s, _ := newTestLevels(t, true)

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg := cmd().(router.PushScreenMsg)
	scr := msg.Screen.(*play.PlayScreen)
	if scr.Title() != "Practice: 1 Times Table" {
		t.Errorf("title = %q, want practice title", scr.Title())
	}
}
