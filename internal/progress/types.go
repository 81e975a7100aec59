package progress

import (
	"fmt"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// Mastery is the proficiency tier of one operation level, derived
// from accumulated accuracy and games played.
type Mastery string

const (
	MasteryLearning Mastery = "learning"
	MasteryGood     Mastery = "good"
	MasteryMastered Mastery = "mastered"
)

// Entry is the accumulated progress for one (operation, level) pair.
type Entry struct {
	Mastery           Mastery `json:"mastery"`
	Accuracy          int     `json:"accuracy"`
	GamesPlayed       int     `json:"gamesPlayed"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	CorrectAnswers    int     `json:"correctAnswers"`
	BestScore         int     `json:"bestScore"`
	BestStars         int     `json:"bestStars"`
}

// Profile is the singleton player profile.
type Profile struct {
	Name                   string    `json:"name"`
	TotalGamesPlayed       int       `json:"totalGamesPlayed"`
	TotalQuestionsAnswered int       `json:"totalQuestionsAnswered"`
	TotalCorrect           int       `json:"totalCorrect"`
	OverallAccuracy        int       `json:"overallAccuracy"`
	TotalStars             int       `json:"totalStars"`
	CreatedDate            time.Time `json:"createdDate"`
	LastPlayedDate         time.Time `json:"lastPlayedDate"`
}

// HistoryEntry is one completed session in the bounded history,
// stored newest first.
type HistoryEntry struct {
	Date              time.Time       `json:"date"`
	Operation         facts.Operation `json:"operation"`
	Level             int             `json:"level"`
	Table             int             `json:"table"`
	Score             int             `json:"score"`
	Accuracy          int             `json:"accuracy"`
	QuestionsAnswered int             `json:"questionsAnswered"`
	CorrectAnswers    int             `json:"correctAnswers"`
	Stars             int             `json:"stars"`
	SpeedBonuses      int             `json:"speedBonuses"`
	MaxCombo          int             `json:"maxCombo"`
	TimePlayedSec     int             `json:"timePlayed"`
}

// Transition signals a mastery change for UI and achievement hooks.
type Transition struct {
	Changed bool
	Old     Mastery
	New     Mastery
}

// SaveSummary is returned by SaveGameSession.
type SaveSummary struct {
	NewMastery  Mastery
	Transition  Transition
	StarsEarned int
	TotalStars  int
}

var keyPrefixes = map[facts.Operation]string{
	facts.Multiplication: "mul",
	facts.Addition:       "add",
	facts.Subtraction:    "sub",
	facts.Division:       "div",
	facts.Mixed:          "mix",
}

// ProgressKey is the storage key for an operation level, e.g. "mul_3".
func ProgressKey(op facts.Operation, level int) string {
	prefix, ok := keyPrefixes[op]
	if !ok {
		prefix = string(op)
	}
	return fmt.Sprintf("%s_%d", prefix, level)
}

// masteryFor derives the mastery tier from an entry's accumulated
// accuracy and games played.
func masteryFor(e Entry) Mastery {
	if e.GamesPlayed == 0 {
		return MasteryLearning
	}
	if e.Accuracy >= 90 && e.GamesPlayed >= 5 {
		return MasteryMastered
	}
	if e.Accuracy >= 70 && e.GamesPlayed >= 3 {
		return MasteryGood
	}
	return MasteryLearning
}
