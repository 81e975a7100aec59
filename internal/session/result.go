package session

import (
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
)

// Result is the outcome of one completed session, consumed by the
// progress and achievement engines.
type Result struct {
	SessionID         string                `json:"sessionId"`
	Operation         facts.Operation       `json:"operation"`
	Level             int                   `json:"level"`
	Table             int                   `json:"table"`
	Score             int                   `json:"score"`
	Accuracy          int                   `json:"accuracy"`
	QuestionsAnswered int                   `json:"questionsAnswered"`
	CorrectAnswers    int                   `json:"correctAnswers"`
	Stars             int                   `json:"stars"`
	MaxCombo          int                   `json:"maxCombo"`
	SpeedBonuses      int                   `json:"speedBonuses"`
	LivesRemaining    int                   `json:"livesRemaining"`
	StartingLives     int                   `json:"startingLives"`
	PracticeMode      bool                  `json:"practiceMode"`
	TimePlayedSec     int                   `json:"timePlayed"`
	WrongAnswers      []problemgen.Question `json:"wrongAnswers,omitempty"`
	History           []problemgen.Question `json:"-"`
	CompletedAt       time.Time             `json:"completedAt"`
}

// Result assembles the session outcome from the manager's history and
// the controller-owned score, combo, and lives counters.
func (m *Manager) Result(score, maxCombo, livesRemaining int) Result {
	stats := m.Stats()
	var wrong []problemgen.Question
	for _, q := range m.history {
		if !q.IsCorrect {
			wrong = append(wrong, q)
		}
	}
	return Result{
		SessionID:         m.id,
		Operation:         m.cfg.Operation,
		Level:             m.cfg.Level,
		Table:             m.cfg.Table,
		Score:             score,
		Accuracy:          stats.Accuracy,
		QuestionsAnswered: stats.QuestionsAnswered,
		CorrectAnswers:    stats.CorrectAnswers,
		Stars:             Stars(stats.Accuracy),
		MaxCombo:          maxCombo,
		SpeedBonuses:      stats.SpeedBonuses,
		LivesRemaining:    livesRemaining,
		StartingLives:     m.cfg.LivesCount,
		PracticeMode:      m.cfg.PracticeMode,
		TimePlayedSec:     int(time.Since(m.startedAt).Seconds()),
		WrongAnswers:      wrong,
		History:           m.history,
		CompletedAt:       time.Now(),
	}
}
