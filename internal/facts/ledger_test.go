package facts

import (
	"testing"

	"github.com/syduan2016/space-math-adventure/internal/storage"
)

func openTestLedger(t *testing.T) (*Ledger, *storage.Store) {
	t.Helper()
	st := storage.OpenMemory()
	l := Open(st)
	t.Cleanup(func() {
		l.Close()
		st.Close()
	})
	return l, st
}

func TestRecordAttemptRoundTrip(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("7x8", true, 2000)
	rec, ok := l.FactData("7x8")
	if !ok {
		t.Fatal("fact not recorded")
	}
	if rec.Attempts != 1 || rec.Correct != 1 || rec.Incorrect != 0 {
		t.Errorf("got attempts=%d correct=%d incorrect=%d", rec.Attempts, rec.Correct, rec.Incorrect)
	}
	if rec.Correct+rec.Incorrect != rec.Attempts {
		t.Error("attempts invariant violated")
	}
	if rec.Operation != Multiplication {
		t.Errorf("operation = %v", rec.Operation)
	}
}

func TestRecordAttemptNormalizesKey(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("8x7", true, 0)
	l.RecordAttempt("7x8", false, 0)

	rec, ok := l.FactData("7x8")
	if !ok || rec.Attempts != 2 {
		t.Fatalf("expected one record with 2 attempts, got %+v ok=%v", rec, ok)
	}
}

func TestStreakResetsOnMiss(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("6x6", true, 0)
	l.RecordAttempt("6x6", true, 0)
	l.RecordAttempt("6x6", false, 0)

	rec, _ := l.FactData("6x6")
	if rec.Streak != 0 {
		t.Errorf("streak = %d after miss, want 0", rec.Streak)
	}
}

func TestAverageResponseTime(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("5x5", true, 1000)
	l.RecordAttempt("5x5", true, 3000)
	rec, _ := l.FactData("5x5")
	if rec.AvgResponseMs != 2000 {
		t.Errorf("avg = %v, want 2000", rec.AvgResponseMs)
	}

	// Non-positive response times leave the average untouched.
	l.RecordAttempt("5x5", true, 0)
	rec, _ = l.FactData("5x5")
	if rec.AvgResponseMs != 2000 {
		t.Errorf("avg = %v after zero-time attempt, want 2000", rec.AvgResponseMs)
	}
}

func TestMasteryThresholds(t *testing.T) {
	l, _ := openTestLedger(t)

	// Under 3 attempts is always new.
	l.RecordAttempt("2x2", true, 0)
	l.RecordAttempt("2x2", true, 0)
	if got := l.MasteryFor("2x2"); got != MasteryNew {
		t.Errorf("2 attempts -> %v, want new", got)
	}

	// 5/5 correct crosses the mastered bar.
	for i := 0; i < 5; i++ {
		l.RecordAttempt("7x8", true, 0)
	}
	if got := l.MasteryFor("7x8"); got != MasteryMastered {
		t.Errorf("5/5 -> %v, want mastered", got)
	}

	// 1/3 correct is learning (33% accuracy).
	l.RecordAttempt("4+5", true, 0)
	l.RecordAttempt("4+5", false, 0)
	l.RecordAttempt("4+5", false, 0)
	if got := l.MasteryFor("4+5"); got != MasteryLearning {
		t.Errorf("1/3 -> %v, want learning", got)
	}

	// 2/3 correct is familiar (66% accuracy).
	l.RecordAttempt("9-3", true, 0)
	l.RecordAttempt("9-3", true, 0)
	l.RecordAttempt("9-3", false, 0)
	if got := l.MasteryFor("9-3"); got != MasteryFamiliar {
		t.Errorf("2/3 -> %v, want familiar", got)
	}
}

func TestMasteryMonotonicity(t *testing.T) {
	attempts := 10
	prev := -1
	for correct := 0; correct <= attempts; correct++ {
		rank := classify(attempts, correct).Rank()
		if rank < prev {
			t.Fatalf("mastery rank decreased at correct=%d", correct)
		}
		prev = rank
	}
}

func TestUnknownKeyStillRecorded(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("weird-key-x", true, 0)
	rec, ok := l.FactData("weird-key-x")
	if !ok {
		t.Fatal("unparseable key should still record")
	}
	if rec.Operation != Unknown {
		t.Errorf("operation = %v, want unknown", rec.Operation)
	}
}

func TestMasteryForUnseenFact(t *testing.T) {
	l, _ := openTestLedger(t)
	if got := l.MasteryFor("1x1"); got != MasteryNew {
		t.Errorf("unseen fact -> %v, want new", got)
	}
}

func TestTotalAttempts(t *testing.T) {
	l, _ := openTestLedger(t)

	for i := 0; i < 4; i++ {
		l.RecordAttempt("3x3", true, 0)
	}
	l.RecordAttempt("2+2", false, 0)

	if got := l.TotalAttempts(); got != 5 {
		t.Errorf("TotalAttempts = %d, want 5", got)
	}
}

func TestWeakestFactsOrdering(t *testing.T) {
	l, _ := openTestLedger(t)

	record := func(key string, correct, wrong int) {
		for i := 0; i < correct; i++ {
			l.RecordAttempt(key, true, 0)
		}
		for i := 0; i < wrong; i++ {
			l.RecordAttempt(key, false, 0)
		}
	}
	record("9x9", 9, 1) // 90%
	record("6x7", 4, 6) // 40%
	record("8x4", 7, 3) // 70%

	got := l.WeakestFacts(3, "")
	if len(got) != 3 {
		t.Fatalf("got %d entries", len(got))
	}
	want := []string{"6x7", "4x8", "9x9"}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("position %d = %q, want %q", i, got[i].Key, key)
		}
	}
}

func TestWeakestFactsFiltersOperation(t *testing.T) {
	l, _ := openTestLedger(t)

	l.RecordAttempt("6x7", false, 0)
	l.RecordAttempt("4+5", false, 0)

	got := l.WeakestFacts(10, Addition)
	if len(got) != 1 || got[0].Record.Operation != Addition {
		t.Fatalf("got %+v, want just the addition fact", got)
	}
}

func TestCloseFlushesToStorage(t *testing.T) {
	st := storage.OpenMemory()
	defer st.Close()

	l := Open(st)
	l.RecordAttempt("7x8", true, 1500)
	l.Close()

	var saved map[string]*FactRecord
	if !st.Get(storage.KeyFactPerformance, &saved) {
		t.Fatal("no fact data persisted after Close")
	}
	if saved["7x8"] == nil || saved["7x8"].Attempts != 1 {
		t.Errorf("persisted record = %+v", saved["7x8"])
	}
}

func TestOpenLoadsFromStorage(t *testing.T) {
	st := storage.OpenMemory()
	defer st.Close()

	l := Open(st)
	for i := 0; i < 3; i++ {
		l.RecordAttempt("6x6", true, 0)
	}
	l.Close()

	l2 := Open(st)
	defer l2.Close()
	rec, ok := l2.FactData("6x6")
	if !ok || rec.Attempts != 3 {
		t.Fatalf("reloaded record = %+v ok=%v", rec, ok)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	l, _ := openTestLedger(t)
	l.Close()
	l.Close()
}
