// Package achievements evaluates declarative unlock conditions against
// the player profile and session results, awarding star rewards.
package achievements

import (
	"github.com/syduan2016/space-math-adventure/internal/facts"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/session"
)

// Context is the state an achievement predicate sees. Session is nil
// when evaluating outside a session end.
type Context struct {
	Profile  progress.Profile
	Session  *session.Result
	Progress *progress.Engine
}

// Achievement is one declarative unlock condition. Check must be a
// pure predicate over the context.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Stars       int    `json:"stars"`
	Check       func(Context) bool `json:"-"`
}

// All achievements in display order.
var All = []Achievement{
	{
		ID: "first_win", Name: "Blast Off!", Icon: "🚀", Stars: 10,
		Description: "Complete your first game",
		Check: func(c Context) bool {
			return c.Profile.TotalGamesPlayed == 1
		},
	},
	{
		ID: "first_perfect", Name: "Perfect Score", Icon: "💯", Stars: 25,
		Description: "Get 100% accuracy in a game",
		Check: func(c Context) bool {
			return c.Session != nil && c.Session.Accuracy == 100
		},
	},
	{
		ID: "table_champion", Name: "Table Champion", Icon: "👑", Stars: 30,
		Description: "Master any multiplication table",
		Check: func(c Context) bool {
			for level := 1; level <= problemgen.MaxLevel; level++ {
				if c.Progress.EntryFor(facts.Multiplication, level).Mastery == progress.MasteryMastered {
					return true
				}
			}
			return false
		},
	},
	{
		ID: "grand_master", Name: "Grand Master", Icon: "🏆", Stars: 100,
		Description: "Master all 1-9 multiplication tables",
		Check: func(c Context) bool {
			for level := 1; level <= problemgen.MaxLevel; level++ {
				if c.Progress.EntryFor(facts.Multiplication, level).Mastery != progress.MasteryMastered {
					return false
				}
			}
			return true
		},
	},
	{
		ID: "speed_demon", Name: "Speed Demon", Icon: "⚡", Stars: 20,
		Description: "Answer 10 questions with speed bonus",
		Check: func(c Context) bool {
			return c.Session != nil && c.Session.SpeedBonuses >= 10
		},
	},
	{
		ID: "combo_king", Name: "Combo King", Icon: "🔥", Stars: 30,
		Description: "Get 20 correct answers in a row",
		Check: func(c Context) bool {
			return c.Session != nil && c.Session.MaxCombo >= 20
		},
	},
	{
		ID: "sharpshooter", Name: "Sharpshooter", Icon: "🎯", Stars: 25,
		Description: "Win without losing any lives",
		Check: func(c Context) bool {
			return c.Session != nil && c.Session.LivesRemaining == c.Session.StartingLives
		},
	},
	{
		ID: "dedicated_student", Name: "Dedicated Student", Icon: "📚", Stars: 15,
		Description: "Play 10 games",
		Check: func(c Context) bool {
			return c.Profile.TotalGamesPlayed >= 10
		},
	},
	{
		ID: "centurion", Name: "Centurion", Icon: "💪", Stars: 50,
		Description: "Play 100 games",
		Check: func(c Context) bool {
			return c.Profile.TotalGamesPlayed >= 100
		},
	},
	{
		ID: "knowledge_seeker", Name: "Knowledge Seeker", Icon: "🧠", Stars: 40,
		Description: "Answer 1000 questions",
		Check: func(c Context) bool {
			return c.Profile.TotalQuestionsAnswered >= 1000
		},
	},
	{
		ID: "ace_student", Name: "Ace Student", Icon: "⭐", Stars: 35,
		Description: "Maintain 85%+ overall accuracy",
		Check: func(c Context) bool {
			return c.Profile.OverallAccuracy >= 85
		},
	},
}
