// Package progress aggregates session results into per-level progress,
// the player profile, unlock gating, and practice recommendations.
package progress

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/session"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

// Unlock criteria: a level opens when the previous one reaches the
// accuracy bar or enough games have been played, so struggling
// players still progress.
const (
	UnlockAccuracy     = 85
	UnlockGames        = 5
	AlwaysUnlockedUpTo = 3
)

// Engine is the sole owner of the player profile, operation progress,
// and session history.
type Engine struct {
	store    *storage.Store
	rng      *rand.Rand
	profile  Profile
	progress map[string]Entry
}

// NewEngine loads profile and progress state from st. A missing
// profile starts fresh.
func NewEngine(st *storage.Store, rng *rand.Rand) *Engine {
	e := &Engine{
		store:    st,
		rng:      rng,
		progress: make(map[string]Entry),
	}
	if !st.Get(storage.KeyProfile, &e.profile) {
		e.profile = Profile{Name: "Space Explorer", CreatedDate: time.Now()}
	}
	var saved map[string]Entry
	if st.Get(storage.KeyOperationProgress, &saved) && saved != nil {
		e.progress = saved
	}
	return e
}

// Profile returns a copy of the player profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Rename changes the pilot name. Blank names are ignored.
func (e *Engine) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	e.profile.Name = name
	e.store.Set(storage.KeyProfile, e.profile)
}

// EntryFor returns the progress entry for an operation level. Absent
// entries come back zeroed with learning mastery.
func (e *Engine) EntryFor(op facts.Operation, level int) Entry {
	entry, ok := e.progress[ProgressKey(op, level)]
	if !ok {
		return Entry{Mastery: MasteryLearning}
	}
	return entry
}

// SaveGameSession folds one session result into the profile, the
// touched progress entry, and the bounded history, then recalculates
// mastery for that level.
func (e *Engine) SaveGameSession(res session.Result) SaveSummary {
	e.updateProfile(res)
	e.updateEntry(res)
	e.appendHistory(res)
	transition := e.RecalcMastery(res.Operation, res.Level)

	return SaveSummary{
		NewMastery:  e.EntryFor(res.Operation, res.Level).Mastery,
		Transition:  transition,
		StarsEarned: res.Stars,
		TotalStars:  e.profile.TotalStars,
	}
}

func (e *Engine) updateProfile(res session.Result) {
	e.profile.TotalGamesPlayed++
	e.profile.TotalQuestionsAnswered += res.QuestionsAnswered
	e.profile.TotalCorrect += res.CorrectAnswers
	e.profile.TotalStars += res.Stars
	e.profile.LastPlayedDate = time.Now()
	if e.profile.TotalQuestionsAnswered > 0 {
		e.profile.OverallAccuracy = roundPct(e.profile.TotalCorrect, e.profile.TotalQuestionsAnswered)
	}
	e.store.Set(storage.KeyProfile, e.profile)
}

func (e *Engine) updateEntry(res session.Result) {
	key := ProgressKey(res.Operation, res.Level)
	entry := e.progress[key]
	if entry.Mastery == "" {
		entry.Mastery = MasteryLearning
	}
	entry.GamesPlayed++
	entry.QuestionsAnswered += res.QuestionsAnswered
	entry.CorrectAnswers += res.CorrectAnswers
	if entry.QuestionsAnswered > 0 {
		entry.Accuracy = roundPct(entry.CorrectAnswers, entry.QuestionsAnswered)
	}
	if res.Score > entry.BestScore {
		entry.BestScore = res.Score
	}
	if res.Stars > entry.BestStars {
		entry.BestStars = res.Stars
	}
	e.progress[key] = entry
	e.store.Set(storage.KeyOperationProgress, e.progress)
}

func (e *Engine) appendHistory(res session.Result) {
	entry := HistoryEntry{
		Date:              time.Now(),
		Operation:         res.Operation,
		Level:             res.Level,
		Table:             res.Table,
		Score:             res.Score,
		Accuracy:          res.Accuracy,
		QuestionsAnswered: res.QuestionsAnswered,
		CorrectAnswers:    res.CorrectAnswers,
		Stars:             res.Stars,
		SpeedBonuses:      res.SpeedBonuses,
		MaxCombo:          res.MaxCombo,
		TimePlayedSec:     res.TimePlayedSec,
	}
	history := e.History(0)
	history = append([]HistoryEntry{entry}, history...)
	if len(history) > storage.MaxSessionHistory {
		history = history[:storage.MaxSessionHistory]
	}
	e.store.Set(storage.KeySessionHistory, history)
}

// History returns the session history newest first, trimmed to limit
// when limit > 0.
func (e *Engine) History(limit int) []HistoryEntry {
	var history []HistoryEntry
	e.store.Get(storage.KeySessionHistory, &history)
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history
}

// RecalcMastery recomputes the mastery tier for an operation level
// and reports whether it changed.
func (e *Engine) RecalcMastery(op facts.Operation, level int) Transition {
	key := ProgressKey(op, level)
	entry, ok := e.progress[key]
	if !ok {
		return Transition{}
	}
	old := entry.Mastery
	next := masteryFor(entry)
	if next == old {
		return Transition{Old: old, New: old}
	}
	entry.Mastery = next
	e.progress[key] = entry
	e.store.Set(storage.KeyOperationProgress, e.progress)
	return Transition{Changed: true, Old: old, New: next}
}

// IsLevelUnlocked reports whether an operation level can be played.
// The first three levels are always open; later ones require the
// previous level to clear the accuracy or games bar.
func (e *Engine) IsLevelUnlocked(op facts.Operation, level int) bool {
	if level <= AlwaysUnlockedUpTo {
		return true
	}
	prev, ok := e.progress[ProgressKey(op, level-1)]
	if !ok {
		return false
	}
	return prev.Accuracy >= UnlockAccuracy || prev.GamesPlayed >= UnlockGames
}

// IsDivisionUnlocked gates division behind multiplication: any table
// of 4 or higher played at least once with 60%+ accuracy.
func (e *Engine) IsDivisionUnlocked() bool {
	for table := 4; table <= problemgen.MaxLevel; table++ {
		entry, ok := e.progress[ProgressKey(facts.Multiplication, table)]
		if ok && entry.GamesPlayed > 0 && entry.Accuracy >= 60 {
			return true
		}
	}
	return false
}

// IsMixedUnlocked opens mixed mode once at least three distinct
// operations have been played.
func (e *Engine) IsMixedUnlocked() bool {
	played := make(map[facts.Operation]bool)
	for op := range keyPrefixes {
		if op == facts.Mixed {
			continue
		}
		for level := 1; level <= problemgen.MaxLevel; level++ {
			if entry, ok := e.progress[ProgressKey(op, level)]; ok && entry.GamesPlayed > 0 {
				played[op] = true
				break
			}
		}
	}
	return len(played) >= 3
}

// AwardStars adds stars to the profile, used for achievement rewards.
func (e *Engine) AwardStars(n int) {
	e.profile.TotalStars += n
	e.store.Set(storage.KeyProfile, e.profile)
}

// SpendStars deducts stars if the balance covers them.
func (e *Engine) SpendStars(n int) bool {
	if n > e.profile.TotalStars {
		return false
	}
	e.profile.TotalStars -= n
	e.store.Set(storage.KeyProfile, e.profile)
	return true
}

// OverallStats aggregates profile and mastery counts for display.
type OverallStats struct {
	TotalGames      int
	TotalQuestions  int
	TotalCorrect    int
	OverallAccuracy int
	TotalStars      int
	LevelsMastered  int
	LevelsGood      int
	LastPlayed      time.Time
}

// Stats summarizes the profile and how many levels sit at each
// mastery tier.
func (e *Engine) Stats() OverallStats {
	stats := OverallStats{
		TotalGames:      e.profile.TotalGamesPlayed,
		TotalQuestions:  e.profile.TotalQuestionsAnswered,
		TotalCorrect:    e.profile.TotalCorrect,
		OverallAccuracy: e.profile.OverallAccuracy,
		TotalStars:      e.profile.TotalStars,
		LastPlayed:      e.profile.LastPlayedDate,
	}
	for _, entry := range e.progress {
		switch entry.Mastery {
		case MasteryMastered:
			stats.LevelsMastered++
		case MasteryGood:
			stats.LevelsGood++
		}
	}
	return stats
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
