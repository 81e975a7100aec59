// Package session runs the per-game question state machine: adaptive
// question selection, answer validation, and session statistics.
package session

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
)

// SelectionConfig tunes adaptive question selection. The recency
// bonus and candidate pool size are tuning constants, kept
// configurable rather than baked in.
type SelectionConfig struct {
	// MinTotalAttempts gates the weighted path: below this many
	// recorded attempts the generator is used directly.
	MinTotalAttempts int

	// CandidatePool is how many candidate questions are drawn per
	// weighted selection.
	CandidatePool int

	// RecentWindow is the length of the recently-asked ring buffer.
	RecentWindow int

	// RecencyBonus multiplies the weight of facts not asked within
	// the recent window.
	RecencyBonus float64

	// Weights maps fact mastery to sampling weight.
	Weights map[facts.MasteryLevel]float64
}

// DefaultSelectionConfig returns the standard tuning.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		MinTotalAttempts: 10,
		CandidatePool:    20,
		RecentWindow:     5,
		RecencyBonus:     1.5,
		Weights:          facts.DefaultWeights,
	}
}

// Outcome reports the result of a submitted answer. Answered is false
// when no question was active; all other fields are then zero.
type Outcome struct {
	Answered         bool
	IsCorrect        bool
	ResponseTimeMs   float64
	CorrectAnswer    int
	EarnedSpeedBonus bool
	Question         problemgen.Question
}

// Stats summarizes the answered questions of the running session.
type Stats struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	Accuracy          int `json:"accuracy"`
	AverageTimeMs     int `json:"averageTime"`
	SpeedBonuses      int `json:"speedBonuses"`
}

// Manager orchestrates the generator and fact ledger for one session.
// All methods are synchronous and cheap enough to call from a frame
// callback.
type Manager struct {
	id     string
	cfg    problemgen.LevelConfig
	sel    SelectionConfig
	gen    problemgen.Generator
	ledger *facts.Ledger
	rng    *rand.Rand

	current   *problemgen.Question
	history   []problemgen.Question
	recent    []string
	startedAt time.Time
}

// NewManager builds a session manager with the default generator and
// selection tuning for cfg.
func NewManager(cfg problemgen.LevelConfig, ledger *facts.Ledger, rng *rand.Rand) *Manager {
	return NewManagerWith(cfg, ledger, problemgen.New(cfg, rng), DefaultSelectionConfig(), rng)
}

// NewManagerWith is NewManager with an explicit generator and
// selection config, used by mixed callers and tests.
func NewManagerWith(cfg problemgen.LevelConfig, ledger *facts.Ledger, gen problemgen.Generator, sel SelectionConfig, rng *rand.Rand) *Manager {
	return &Manager{
		id:        uuid.NewString(),
		cfg:       cfg,
		sel:       sel,
		gen:       gen,
		ledger:    ledger,
		rng:       rng,
		startedAt: time.Now(),
	}
}

// ID is the unique identifier of this session.
func (m *Manager) ID() string { return m.id }

// GenerateQuestion produces the next question and makes it current.
// Once the ledger holds enough attempts, candidates are drawn and
// sampled by mastery weight so weak facts come up more often;
// otherwise the generator is used directly.
func (m *Manager) GenerateQuestion() *problemgen.Question {
	if m.ledger != nil && m.ledger.TotalAttempts() >= m.sel.MinTotalAttempts {
		m.current = m.weightedQuestion()
	} else {
		m.current = m.gen.Generate()
	}
	return m.current
}

func (m *Manager) weightedQuestion() *problemgen.Question {
	type candidate struct {
		q      *problemgen.Question
		key    string
		weight float64
	}

	seen := make(map[string]bool)
	var cands []candidate
	var total float64
	for i := 0; i < m.sel.CandidatePool; i++ {
		q := m.gen.Generate()
		key := facts.NormalizeKey(q.FactKey)
		if seen[key] {
			continue
		}
		seen[key] = true

		w := m.sel.Weights[m.ledger.MasteryFor(key)]
		if w <= 0 {
			w = m.sel.Weights[facts.MasteryNew]
		}
		if !m.askedRecently(key) {
			w *= m.sel.RecencyBonus
		}
		cands = append(cands, candidate{q: q, key: key, weight: w})
		total += w
	}
	if len(cands) == 0 || total <= 0 {
		return m.gen.Generate()
	}

	chosen := cands[len(cands)-1]
	roll := m.rng.Float64() * total
	for _, c := range cands {
		roll -= c.weight
		if roll <= 0 {
			chosen = c
			break
		}
	}
	m.pushRecent(chosen.key)
	return chosen.q
}

func (m *Manager) askedRecently(key string) bool {
	for _, k := range m.recent {
		if k == key {
			return true
		}
	}
	return false
}

func (m *Manager) pushRecent(key string) {
	m.recent = append(m.recent, key)
	if len(m.recent) > m.sel.RecentWindow {
		m.recent = m.recent[1:]
	}
}

// CurrentQuestion returns the active question, nil between questions.
func (m *Manager) CurrentQuestion() *problemgen.Question {
	return m.current
}

// Hints returns the hints for the active question.
func (m *Manager) Hints() []string {
	if m.current == nil {
		return nil
	}
	return m.gen.Hints(m.current)
}

// CheckAnswer validates answer against the current question, records
// the outcome in the history and fact ledger, and clears the current
// question. With no active question it returns Outcome{Answered: false}.
func (m *Manager) CheckAnswer(answer int, startTime time.Time) Outcome {
	if m.current == nil {
		return Outcome{}
	}

	now := time.Now()
	responseMs := float64(now.Sub(startTime)) / float64(time.Millisecond)
	if responseMs < 0 {
		responseMs = 0
	}
	isCorrect := answer == m.current.CorrectAnswer

	m.current.AnsweredAt = now
	m.current.IsCorrect = isCorrect
	m.current.ResponseTimeMs = responseMs
	snapshot := *m.current
	m.history = append(m.history, snapshot)

	if m.ledger != nil {
		m.ledger.RecordAttempt(snapshot.FactKey, isCorrect, responseMs)
	}
	m.current = nil

	return Outcome{
		Answered:         true,
		IsCorrect:        isCorrect,
		ResponseTimeMs:   responseMs,
		CorrectAnswer:    snapshot.CorrectAnswer,
		EarnedSpeedBonus: responseMs < float64(m.cfg.TimeBonusMs),
		Question:         snapshot,
	}
}

// SessionComplete reports whether the configured question count has
// been answered.
func (m *Manager) SessionComplete() bool {
	return len(m.history) >= m.cfg.QuestionsPerGame
}

// QuestionsRemaining returns how many questions are left, never
// negative.
func (m *Manager) QuestionsRemaining() int {
	return max(0, m.cfg.QuestionsPerGame-len(m.history))
}

// History returns the answered-question snapshots in order.
func (m *Manager) History() []problemgen.Question {
	return m.history
}

// Stats computes summary statistics over the answered questions.
func (m *Manager) Stats() Stats {
	if len(m.history) == 0 {
		return Stats{}
	}
	var correct, bonuses int
	var totalTime float64
	for _, q := range m.history {
		if q.IsCorrect {
			correct++
			if q.ResponseTimeMs < float64(m.cfg.TimeBonusMs) {
				bonuses++
			}
		}
		totalTime += q.ResponseTimeMs
	}
	n := len(m.history)
	return Stats{
		QuestionsAnswered: n,
		CorrectAnswers:    correct,
		Accuracy:          int(math.Round(float64(correct) / float64(n) * 100)),
		AverageTimeMs:     int(math.Round(totalTime / float64(n))),
		SpeedBonuses:      bonuses,
	}
}

// Reset clears the session state for a fresh run: history, recent
// ring buffer, and the generator's anti-repeat sets.
func (m *Manager) Reset() {
	m.current = nil
	m.history = nil
	m.recent = nil
	m.gen.Reset()
}
