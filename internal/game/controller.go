// Package game is the session controller: it drives the question
// manager per answer, keeps score, combo, and lives, and hands
// completed sessions to the progress and achievement engines.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/achievements"
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/session"
)

// PracticeLives replaces the tier's life count in practice mode.
const PracticeLives = 10

// Phase is the controller's session state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseActive   Phase = "active"
	PhaseComplete Phase = "complete"
	PhaseGameOver Phase = "game_over"
)

// Feedback reports the consequences of one submitted answer.
type Feedback struct {
	Outcome      session.Outcome
	PointsEarned int
	PerfectBonus int
	Score        int
	Combo        int
	Lives        int
	SessionOver  bool
}

// Summary wraps up a finished session. Save and Unlocked stay empty
// for practice sessions, which never touch stored progress.
type Summary struct {
	Result     session.Result
	Save       progress.SaveSummary
	Unlocked   []achievements.Achievement
	TotalStars int
	Saved      bool
}

// Controller orchestrates one session at a time.
type Controller struct {
	ledger *facts.Ledger
	prog   *progress.Engine
	ach    *achievements.Engine
	rng    *rand.Rand

	cfg      problemgen.LevelConfig
	manager  *session.Manager
	phase    Phase
	score    int
	combo    int
	maxCombo int
	lives    int
}

// NewController wires the controller to its collaborators.
func NewController(ledger *facts.Ledger, prog *progress.Engine, ach *achievements.Engine, rng *rand.Rand) *Controller {
	return &Controller{
		ledger: ledger,
		prog:   prog,
		ach:    ach,
		rng:    rng,
		phase:  PhaseIdle,
	}
}

// StartSession begins a session for cfg and returns the first
// question.
func (c *Controller) StartSession(cfg problemgen.LevelConfig) *problemgen.Question {
	if cfg.PracticeMode {
		cfg.LivesCount = PracticeLives
	}
	c.cfg = cfg
	c.manager = session.NewManager(cfg, c.ledger, c.rng)
	c.phase = PhaseActive
	c.score = 0
	c.combo = 0
	c.maxCombo = 0
	c.lives = cfg.LivesCount
	return c.manager.GenerateQuestion()
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the running score.
func (c *Controller) Score() int { return c.score }

// Combo returns the current correct-answer streak.
func (c *Controller) Combo() int { return c.combo }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// Config returns the active session's level configuration.
func (c *Controller) Config() problemgen.LevelConfig { return c.cfg }

// CurrentQuestion returns the active question, nil between questions.
func (c *Controller) CurrentQuestion() *problemgen.Question {
	if c.manager == nil {
		return nil
	}
	return c.manager.CurrentQuestion()
}

// Hints returns hints for the active question.
func (c *Controller) Hints() []string {
	if c.manager == nil {
		return nil
	}
	return c.manager.Hints()
}

// SubmitAnswer validates the answer, scores it, and advances the
// session state. A correct answer extends the combo and earns points;
// a wrong one resets the combo and costs a life.
func (c *Controller) SubmitAnswer(answer int, startTime time.Time) Feedback {
	if c.phase != PhaseActive || c.manager == nil {
		return Feedback{Lives: c.lives, Score: c.score}
	}

	outcome := c.manager.CheckAnswer(answer, startTime)
	if !outcome.Answered {
		return Feedback{Lives: c.lives, Score: c.score}
	}

	points := 0
	if outcome.IsCorrect {
		c.combo++
		if c.combo > c.maxCombo {
			c.maxCombo = c.combo
		}
		points = session.Points(c.combo, outcome.EarnedSpeedBonus, c.cfg.PracticeMode)
		c.score += points
	} else {
		c.combo = 0
		c.lives--
	}

	perfectBonus := 0
	switch {
	case c.lives <= 0:
		c.phase = PhaseGameOver
	case c.manager.SessionComplete():
		c.phase = PhaseComplete
		if stats := c.manager.Stats(); stats.CorrectAnswers == stats.QuestionsAnswered {
			perfectBonus = session.PerfectRoundBonus
			if c.cfg.PracticeMode {
				perfectBonus /= 2
			}
			c.score += perfectBonus
		}
	}

	return Feedback{
		Outcome:      outcome,
		PointsEarned: points,
		PerfectBonus: perfectBonus,
		Score:        c.score,
		Combo:        c.combo,
		Lives:        c.lives,
		SessionOver:  c.phase != PhaseActive,
	}
}

// NextQuestion produces the next question while the session is
// active.
func (c *Controller) NextQuestion() *problemgen.Question {
	if c.phase != PhaseActive || c.manager == nil {
		return nil
	}
	return c.manager.GenerateQuestion()
}

// QuestionsRemaining returns how many questions are left to answer.
func (c *Controller) QuestionsRemaining() int {
	if c.manager == nil {
		return 0
	}
	return c.manager.QuestionsRemaining()
}

// EndSession finalizes the session: it assembles the result, saves
// progress, and evaluates achievements. Practice sessions produce a
// result but are never saved.
func (c *Controller) EndSession() Summary {
	if c.manager == nil {
		return Summary{}
	}

	res := c.manager.Result(c.score, c.maxCombo, c.lives)
	summary := Summary{Result: res}

	if !c.cfg.PracticeMode {
		summary.Save = c.prog.SaveGameSession(res)
		summary.Unlocked = c.ach.CheckAll(&res)
		summary.Saved = true
	}
	summary.TotalStars = c.prog.Profile().TotalStars

	c.phase = PhaseIdle
	c.manager = nil
	return summary
}
