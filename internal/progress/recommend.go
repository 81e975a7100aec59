package progress

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
)

// WeakArea is a level or individual fact flagged for practice.
type WeakArea struct {
	Kind        string          `json:"kind"` // "level" or "fact"
	Operation   facts.Operation `json:"operation"`
	Level       int             `json:"level,omitempty"`
	FactKey     string          `json:"factKey,omitempty"`
	Accuracy    int             `json:"accuracy"`
	GamesPlayed int             `json:"gamesPlayed,omitempty"`
	Attempts    int             `json:"attempts,omitempty"`
}

// Recommendation points the player at what to practice next.
type Recommendation struct {
	Operation       facts.Operation
	Level           int
	Reason          string
	CurrentAccuracy int
	GamesPlayed     int
}

// WeakAreas lists played levels below 70% accuracy that are not yet
// mastered, plus the weakest individual facts with 3+ attempts, all
// sorted weakest first.
func (e *Engine) WeakAreas(ledger *facts.Ledger) []WeakArea {
	var areas []WeakArea
	for key, entry := range e.progress {
		if entry.GamesPlayed == 0 || entry.Accuracy >= 70 || entry.Mastery == MasteryMastered {
			continue
		}
		op, level, ok := parseProgressKey(key)
		if !ok {
			continue
		}
		areas = append(areas, WeakArea{
			Kind:        "level",
			Operation:   op,
			Level:       level,
			Accuracy:    entry.Accuracy,
			GamesPlayed: entry.GamesPlayed,
		})
	}

	if ledger != nil {
		for _, f := range ledger.WeakestFacts(10, "") {
			if f.Record.Attempts < 3 {
				continue
			}
			areas = append(areas, WeakArea{
				Kind:      "fact",
				Operation: f.Record.Operation,
				FactKey:   f.Key,
				Accuracy:  int(math.Round(f.Record.Accuracy())),
				Attempts:  f.Record.Attempts,
			})
		}
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Accuracy < areas[j].Accuracy
	})
	return areas
}

// RecommendedPractice picks the next thing to practice, in priority
// order: weak facts by operation, weak levels, barely played unlocked
// levels, any unlocked level, then level 1.
func (e *Engine) RecommendedPractice(ledger *facts.Ledger) Recommendation {
	if ledger != nil && ledger.TotalAttempts() >= 10 {
		if rec, ok := e.weakFactRecommendation(ledger); ok {
			return rec
		}
	}

	if rec, ok := e.weakLevelRecommendation(); ok {
		return rec
	}

	// A level the player has barely touched.
	for level := 1; level <= problemgen.MaxLevel; level++ {
		if !e.IsLevelUnlocked(facts.Multiplication, level) {
			continue
		}
		entry := e.EntryFor(facts.Multiplication, level)
		if entry.GamesPlayed < 3 {
			return Recommendation{
				Operation:   facts.Multiplication,
				Level:       level,
				Reason:      "New challenge",
				GamesPlayed: entry.GamesPlayed,
			}
		}
	}

	var unlocked []int
	for level := 1; level <= problemgen.MaxLevel; level++ {
		if e.IsLevelUnlocked(facts.Multiplication, level) {
			unlocked = append(unlocked, level)
		}
	}
	if len(unlocked) > 0 {
		return Recommendation{
			Operation: facts.Multiplication,
			Level:     unlocked[e.rng.IntN(len(unlocked))],
			Reason:    "Keep practicing",
		}
	}

	return Recommendation{Operation: facts.Multiplication, Level: 1, Reason: "Start here"}
}

// weakFactRecommendation groups the weakest facts by operation and
// recommends the operation with the lowest aggregate accuracy, if it
// falls below 85%.
func (e *Engine) weakFactRecommendation(ledger *facts.Ledger) (Recommendation, bool) {
	type opStats struct{ attempts, correct int }
	byOp := make(map[facts.Operation]*opStats)
	for _, f := range ledger.WeakestFacts(10, "") {
		if f.Record.Attempts < 3 {
			continue
		}
		st := byOp[f.Record.Operation]
		if st == nil {
			st = &opStats{}
			byOp[f.Record.Operation] = st
		}
		st.attempts += f.Record.Attempts
		st.correct += f.Record.Correct
	}
	if len(byOp) == 0 {
		return Recommendation{}, false
	}

	worstAcc := 100
	var worstOp facts.Operation
	for op, st := range byOp {
		acc := roundPct(st.correct, st.attempts)
		if acc < worstAcc || (acc == worstAcc && worstOp == "") {
			worstAcc = acc
			worstOp = op
		}
	}
	if worstOp == "" || worstOp == facts.Unknown || worstAcc >= 85 {
		return Recommendation{}, false
	}
	return Recommendation{
		Operation:       worstOp,
		Level:           1,
		Reason:          "Weak facts need practice",
		CurrentAccuracy: worstAcc,
	}, true
}

func (e *Engine) weakLevelRecommendation() (Recommendation, bool) {
	best := Recommendation{CurrentAccuracy: 100}
	found := false
	for key, entry := range e.progress {
		if entry.GamesPlayed == 0 || entry.Accuracy >= 70 || entry.Mastery == MasteryMastered {
			continue
		}
		op, level, ok := parseProgressKey(key)
		if !ok {
			continue
		}
		if !found || entry.Accuracy < best.CurrentAccuracy {
			best = Recommendation{
				Operation:       op,
				Level:           level,
				Reason:          "Needs practice",
				CurrentAccuracy: entry.Accuracy,
				GamesPlayed:     entry.GamesPlayed,
			}
			found = true
		}
	}
	return best, found
}

// Trend summarizes the accuracy direction over recent sessions of one
// level.
type Trend struct {
	Direction      string `json:"trend"` // "improving", "declining", "stable", "neutral"
	Change         int    `json:"change"`
	Sessions       int    `json:"sessions"`
	CurrentAverage int    `json:"currentAverage"`
}

// ImprovementTrend compares average accuracy of the newer half of
// recent sessions against the older half for one operation level.
func (e *Engine) ImprovementTrend(op facts.Operation, level, days int) Trend {
	cutoff := time.Now().AddDate(0, 0, -days)
	var recent []HistoryEntry
	for _, h := range e.History(0) {
		if h.Operation == op && h.Level == level && !h.Date.Before(cutoff) {
			recent = append(recent, h)
		}
	}
	if len(recent) == 0 {
		return Trend{Direction: "neutral"}
	}

	// History is newest first: the tail is the older half.
	mid := len(recent) / 2
	newer, older := recent[:mid], recent[mid:]
	if len(newer) == 0 {
		newer = recent
	}
	avgNewer := avgAccuracy(newer)
	avgOlder := avgAccuracy(older)
	change := avgNewer - avgOlder

	direction := "stable"
	if change > 5 {
		direction = "improving"
	} else if change < -5 {
		direction = "declining"
	}
	return Trend{
		Direction:      direction,
		Change:         int(math.Round(change)),
		Sessions:       len(recent),
		CurrentAverage: int(math.Round(avgNewer)),
	}
}

func avgAccuracy(entries []HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, h := range entries {
		total += h.Accuracy
	}
	return float64(total) / float64(len(entries))
}

var prefixOps = map[string]facts.Operation{
	"mul": facts.Multiplication,
	"add": facts.Addition,
	"sub": facts.Subtraction,
	"div": facts.Division,
	"mix": facts.Mixed,
}

func parseProgressKey(key string) (facts.Operation, int, bool) {
	prefix, levelStr, ok := strings.Cut(key, "_")
	if !ok {
		return "", 0, false
	}
	op, ok := prefixOps[prefix]
	if !ok {
		return "", 0, false
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return "", 0, false
	}
	return op, level, true
}
