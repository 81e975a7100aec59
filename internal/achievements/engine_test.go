package achievements

import (
	"math/rand/v2"
	"testing"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/session"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

func testEngines(t *testing.T) (*Engine, *progress.Engine, *storage.Store) {
	t.Helper()
	st := storage.OpenMemory()
	t.Cleanup(func() { st.Close() })
	prog := progress.NewEngine(st, rand.New(rand.NewPCG(2, 3)))
	return NewEngine(st, prog), prog, st
}

func perfectResult() session.Result {
	return session.Result{
		Operation:         facts.Multiplication,
		Level:             3,
		Table:             3,
		Score:             1800,
		Accuracy:          100,
		QuestionsAnswered: 12,
		CorrectAnswers:    12,
		Stars:             3,
		MaxCombo:          12,
		SpeedBonuses:      12,
		LivesRemaining:    5,
		StartingLives:     5,
	}
}

func TestFirstGameUnlocks(t *testing.T) {
	ach, prog, _ := testEngines(t)

	res := perfectResult()
	prog.SaveGameSession(res)
	newly := ach.CheckAll(&res)

	ids := make(map[string]bool)
	for _, a := range newly {
		ids[a.ID] = true
	}
	for _, want := range []string{"first_win", "first_perfect", "speed_demon", "sharpshooter", "ace_student"} {
		if !ids[want] {
			t.Errorf("%s not unlocked: got %v", want, ids)
		}
	}
	if ids["combo_king"] {
		t.Error("combo_king needs a 20 streak, session had 12")
	}
}

func TestStarRewardsAddedToProfile(t *testing.T) {
	ach, prog, _ := testEngines(t)

	res := perfectResult()
	summary := prog.SaveGameSession(res)
	before := summary.TotalStars

	newly := ach.CheckAll(&res)
	wantBonus := 0
	for _, a := range newly {
		wantBonus += a.Stars
	}
	if got := prog.Profile().TotalStars; got != before+wantBonus {
		t.Errorf("totalStars = %d, want %d", got, before+wantBonus)
	}
}

func TestCheckAllIdempotent(t *testing.T) {
	ach, prog, _ := testEngines(t)

	res := perfectResult()
	prog.SaveGameSession(res)
	first := ach.CheckAll(&res)
	if len(first) == 0 {
		t.Fatal("nothing unlocked on first check")
	}
	starsAfter := prog.Profile().TotalStars

	again := ach.CheckAll(&res)
	if len(again) != 0 {
		t.Errorf("second check unlocked %d achievements again", len(again))
	}
	if prog.Profile().TotalStars != starsAfter {
		t.Error("stars awarded twice")
	}
}

func TestUnlockedStatePersists(t *testing.T) {
	ach, prog, st := testEngines(t)

	res := perfectResult()
	prog.SaveGameSession(res)
	ach.CheckAll(&res)

	reloaded := NewEngine(st, prog)
	if !reloaded.Unlocked("first_win") {
		t.Error("unlocked state lost across reload")
	}
	if reloaded.UnlockedAt("first_win").IsZero() {
		t.Error("unlock timestamp missing")
	}
}

func TestTableChampion(t *testing.T) {
	ach, prog, _ := testEngines(t)

	// Five perfect games on table 2 reach mastered.
	var res session.Result
	for i := 0; i < 5; i++ {
		res = perfectResult()
		res.Level = 2
		res.Table = 2
		prog.SaveGameSession(res)
	}
	newly := ach.CheckAll(&res)

	found := false
	for _, a := range newly {
		if a.ID == "table_champion" {
			found = true
		}
		if a.ID == "grand_master" {
			t.Error("grand_master should need all nine tables")
		}
	}
	if !found {
		t.Error("table_champion not unlocked after mastering table 2")
	}
}

func TestDedicatedStudent(t *testing.T) {
	ach, prog, _ := testEngines(t)

	var res session.Result
	for i := 0; i < 10; i++ {
		res = perfectResult()
		prog.SaveGameSession(res)
	}
	newly := ach.CheckAll(&res)

	found := false
	for _, a := range newly {
		if a.ID == "dedicated_student" {
			found = true
		}
	}
	if !found {
		t.Error("dedicated_student not unlocked after 10 games")
	}
}
