package play

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

func newTestPlay(t *testing.T, practice bool) *PlayScreen {
	t.Helper()
	st := storage.OpenMemory()
	rng := rand.New(rand.NewPCG(7, 13))
	prog := progress.NewEngine(st, rng)
	ledger := facts.Open(st)
	t.Cleanup(ledger.Close)
	ach := achievements.NewEngine(st, prog)
	ctrl := game.NewController(ledger, prog, ach, rng)

	cfg := problemgen.BuildLevelConfig(facts.Multiplication, 2)
	cfg.PracticeMode = practice

	s := New(ctrl, cfg)
	s.Init()
	return s
}

func pressKey(s *PlayScreen, code rune, text string) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code, Text: text})
	return cmd
}

// answerKey returns the number key that picks the correct (or a
// wrong) choice for the current question.
func answerKey(s *PlayScreen, correct bool) rune {
	for i, c := range s.choice.Choices {
		if (c == s.question.CorrectAnswer) == correct {
			return rune('1' + i)
		}
	}
	return '1'
}

func TestInitStartsSession(t *testing.T) {
	s := newTestPlay(t, false)

	if s.question == nil {
		t.Fatal("expected a question after Init")
	}
	if got, want := len(s.choice.Choices), s.cfg.AnswerChoices; got != want {
		t.Errorf("choices = %d, want %d", got, want)
	}
	if s.ctrl.Phase() != game.PhaseActive {
		t.Errorf("phase = %v, want active", s.ctrl.Phase())
	}
}

func TestCorrectAnswerShowsFeedback(t *testing.T) {
	s := newTestPlay(t, false)

	key := answerKey(s, true)
	cmd := pressKey(s, key, string(key))

	if s.feedback == nil {
		t.Fatal("expected feedback after answering")
	}
	if !s.feedback.Outcome.IsCorrect {
		t.Error("expected a correct outcome")
	}
	if s.feedback.PointsEarned <= 0 {
		t.Errorf("points = %d, want > 0", s.feedback.PointsEarned)
	}
	if cmd == nil {
		t.Error("expected a feedback timer command")
	}
}

func TestWrongAnswerCostsLife(t *testing.T) {
	s := newTestPlay(t, false)
	livesBefore := s.ctrl.Lives()

	key := answerKey(s, false)
	pressKey(s, key, string(key))

	if s.feedback == nil {
		t.Fatal("expected feedback after answering")
	}
	if s.feedback.Outcome.IsCorrect {
		t.Error("expected a wrong outcome")
	}
	if got := s.ctrl.Lives(); got != livesBefore-1 {
		t.Errorf("lives = %d, want %d", got, livesBefore-1)
	}
}

func TestFeedbackTimerAdvancesQuestion(t *testing.T) {
	s := newTestPlay(t, false)

	key := answerKey(s, true)
	pressKey(s, key, string(key))

	s.Update(feedbackDoneMsg{})

	if s.feedback != nil {
		t.Error("feedback should clear after the timer")
	}
	if s.question == nil {
		t.Fatal("expected a next question")
	}
	if s.choice.Submitted {
		t.Error("choice should reset for the next question")
	}
}

func TestEscOpensQuitConfirm(t *testing.T) {
	s := newTestPlay(t, false)

	pressKey(s, tea.KeyEscape, "")
	if !s.showingQuit {
		t.Fatal("expected quit confirm after esc")
	}

	// n resumes play
	pressKey(s, 'n', "n")
	if s.showingQuit {
		t.Error("n should dismiss the quit confirm")
	}

	// y ends the session
	pressKey(s, tea.KeyEscape, "")
	cmd := pressKey(s, 'y', "y")
	if cmd == nil {
		t.Fatal("expected an end-session command")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected sessionEndMsg from quit confirm")
	}
}

func TestSessionEndReplacesWithSummary(t *testing.T) {
	s := newTestPlay(t, false)

	_, cmd := s.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a summary command")
	}
	msg := cmd()
	ready, ok := msg.(summaryReadyMsg)
	if !ok {
		t.Fatalf("got %T, want summaryReadyMsg", msg)
	}

	_, cmd = s.Update(ready)
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the summary screen")
	}
}

func TestHintsOnlyInPractice(t *testing.T) {
	s := newTestPlay(t, false)
	pressKey(s, '?', "?")
	if s.hintsShown != 0 {
		t.Error("hints should stay hidden outside practice mode")
	}

	p := newTestPlay(t, true)
	pressKey(p, '?', "?")
	if p.hintsShown != 1 {
		t.Errorf("hintsShown = %d, want 1", p.hintsShown)
	}
}
