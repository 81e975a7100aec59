package session

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

// stubGen returns scripted questions and counts Generate calls.
type stubGen struct {
	calls int
	next  func(call int) *problemgen.Question
}

func (s *stubGen) Generate() *problemgen.Question {
	s.calls++
	return s.next(s.calls)
}

func (s *stubGen) Hints(q *problemgen.Question) []string {
	return []string{fmt.Sprintf("%d", q.CorrectAnswer)}
}

func (s *stubGen) Reset() {}

func multQuestion(a, b int) *problemgen.Question {
	return &problemgen.Question{
		Operation:     facts.Multiplication,
		Operands:      [2]int{a, b},
		Text:          fmt.Sprintf("%d × %d", a, b),
		CorrectAnswer: a * b,
		Choices:       []int{a * b, a*b + 1, a*b - 1},
		FactKey:       fmt.Sprintf("%dx%d", a, b),
	}
}

func testManager(t *testing.T, gen problemgen.Generator, seedAttempts int) (*Manager, *facts.Ledger) {
	t.Helper()
	st := storage.OpenMemory()
	ledger := facts.Open(st)
	t.Cleanup(func() {
		ledger.Close()
		st.Close()
	})
	for i := 0; i < seedAttempts; i++ {
		ledger.RecordAttempt(fmt.Sprintf("%dx9", i+1), true, 0)
	}
	cfg := problemgen.BuildLevelConfig(facts.Multiplication, 3)
	rng := rand.New(rand.NewPCG(7, 11))
	m := NewManagerWith(cfg, ledger, gen, DefaultSelectionConfig(), rng)
	return m, ledger
}

func TestGenerateQuestionFallsBackBelowThreshold(t *testing.T) {
	gen := &stubGen{next: func(int) *problemgen.Question { return multQuestion(3, 4) }}
	m, _ := testManager(t, gen, 9)

	q := m.GenerateQuestion()
	if q == nil {
		t.Fatal("no question")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times below threshold, want 1", gen.calls)
	}
}

func TestGenerateQuestionWeightedAboveThreshold(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question {
		return multQuestion(3, call%9+1)
	}}
	m, _ := testManager(t, gen, 10)

	q := m.GenerateQuestion()
	if q == nil {
		t.Fatal("no question")
	}
	if gen.calls != DefaultSelectionConfig().CandidatePool {
		t.Errorf("generator called %d times, want the full candidate pool", gen.calls)
	}
	key := facts.NormalizeKey(q.FactKey)
	if !m.askedRecently(key) {
		t.Error("chosen fact not pushed into the recent buffer")
	}
}

func TestWeightedSelectionPrefersWeakFacts(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question {
		// Alternate between a mastered fact and a struggling one.
		if call%2 == 0 {
			return multQuestion(3, 4)
		}
		return multQuestion(3, 7)
	}}
	m, ledger := testManager(t, gen, 0)

	// 3x4 mastered (6/6), 3x7 learning (1/5).
	for i := 0; i < 6; i++ {
		ledger.RecordAttempt("3x4", true, 0)
	}
	ledger.RecordAttempt("3x7", true, 0)
	for i := 0; i < 4; i++ {
		ledger.RecordAttempt("3x7", false, 0)
	}

	weak := 0
	const draws = 200
	for i := 0; i < draws; i++ {
		if m.GenerateQuestion().FactKey == "3x7" {
			weak++
		}
		m.recent = nil
	}
	// Learning weight 6 vs mastered 1 should dominate the draw.
	if weak <= draws/2 {
		t.Errorf("weak fact drawn %d/%d times, expected a clear majority", weak, draws)
	}
}

func TestRecentBufferCapped(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question {
		return multQuestion(call, 1)
	}}
	m, _ := testManager(t, gen, 10)

	for i := 0; i < 10; i++ {
		m.GenerateQuestion()
	}
	if len(m.recent) > DefaultSelectionConfig().RecentWindow {
		t.Errorf("recent buffer grew to %d", len(m.recent))
	}
}

func TestCheckAnswerCorrect(t *testing.T) {
	gen := &stubGen{next: func(int) *problemgen.Question { return multQuestion(3, 4) }}
	m, ledger := testManager(t, gen, 0)

	m.GenerateQuestion()
	out := m.CheckAnswer(12, time.Now().Add(-2*time.Second))
	if !out.Answered || !out.IsCorrect {
		t.Fatalf("outcome = %+v", out)
	}
	if !out.EarnedSpeedBonus {
		t.Error("2s answer under a 3s threshold should earn the bonus")
	}
	if out.CorrectAnswer != 12 {
		t.Errorf("correctAnswer = %d", out.CorrectAnswer)
	}
	if m.CurrentQuestion() != nil {
		t.Error("current question should clear after answering")
	}

	rec, ok := ledger.FactData("3x4")
	if !ok || rec.Attempts != 1 || rec.Correct != 1 {
		t.Errorf("ledger record = %+v ok=%v", rec, ok)
	}
}

func TestCheckAnswerIncorrect(t *testing.T) {
	gen := &stubGen{next: func(int) *problemgen.Question { return multQuestion(3, 4) }}
	m, ledger := testManager(t, gen, 0)

	m.GenerateQuestion()
	out := m.CheckAnswer(13, time.Now())
	if !out.Answered || out.IsCorrect {
		t.Fatalf("outcome = %+v", out)
	}

	rec, _ := ledger.FactData("3x4")
	if rec.Incorrect != 1 {
		t.Errorf("ledger incorrect = %d", rec.Incorrect)
	}
}

func TestCheckAnswerWithoutQuestion(t *testing.T) {
	gen := &stubGen{next: func(int) *problemgen.Question { return multQuestion(3, 4) }}
	m, _ := testManager(t, gen, 0)

	out := m.CheckAnswer(12, time.Now())
	if out.Answered {
		t.Error("expected sentinel outcome with no active question")
	}
}

func TestHistorySnapshotsAreImmutable(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question { return multQuestion(3, call) }}
	m, _ := testManager(t, gen, 0)

	q := m.GenerateQuestion()
	m.CheckAnswer(q.CorrectAnswer, time.Now())

	// Mutating the returned question must not change history.
	q.CorrectAnswer = -1
	if m.History()[0].CorrectAnswer == -1 {
		t.Error("history shares memory with the live question")
	}
}

func TestSessionCompleteAndStats(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question { return multQuestion(3, call%9+1) }}
	m, _ := testManager(t, gen, 0)

	if m.SessionComplete() {
		t.Fatal("fresh session already complete")
	}
	total := m.QuestionsRemaining()
	if total != 12 {
		t.Fatalf("beginner session should ask 12 questions, got %d", total)
	}

	for i := 0; i < total; i++ {
		q := m.GenerateQuestion()
		answer := q.CorrectAnswer
		if i >= 9 {
			answer++ // miss the last three
		}
		m.CheckAnswer(answer, time.Now())
	}

	if !m.SessionComplete() {
		t.Error("session should be complete")
	}
	stats := m.Stats()
	if stats.QuestionsAnswered != 12 || stats.CorrectAnswers != 9 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Accuracy != 75 {
		t.Errorf("accuracy = %d, want 75", stats.Accuracy)
	}
}

func TestResetClearsSessionState(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question { return multQuestion(3, call%9+1) }}
	m, _ := testManager(t, gen, 0)

	q := m.GenerateQuestion()
	m.CheckAnswer(q.CorrectAnswer, time.Now())
	m.Reset()

	if len(m.History()) != 0 || m.CurrentQuestion() != nil || len(m.recent) != 0 {
		t.Error("reset left session state behind")
	}
}

func TestResultCollectsWrongAnswers(t *testing.T) {
	gen := &stubGen{next: func(call int) *problemgen.Question { return multQuestion(3, call%9+1) }}
	m, _ := testManager(t, gen, 0)

	for i := 0; i < 12; i++ {
		q := m.GenerateQuestion()
		answer := q.CorrectAnswer
		if i < 2 {
			answer++
		}
		m.CheckAnswer(answer, time.Now())
	}

	res := m.Result(2400, 10, 3)
	if res.Score != 2400 || res.MaxCombo != 10 || res.LivesRemaining != 3 {
		t.Errorf("result = %+v", res)
	}
	if len(res.WrongAnswers) != 2 {
		t.Errorf("wrongAnswers = %d, want 2", len(res.WrongAnswers))
	}
	if res.StartingLives != 5 {
		t.Errorf("startingLives = %d, want 5 for beginner", res.StartingLives)
	}
	if res.Stars != Stars(res.Accuracy) {
		t.Errorf("stars %d inconsistent with accuracy %d", res.Stars, res.Accuracy)
	}
}
