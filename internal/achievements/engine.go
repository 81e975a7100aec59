package achievements

import (
	"time"

	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/session"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

// Record marks one unlocked achievement.
type Record struct {
	UnlockedAt time.Time `json:"unlockedAt"`
}

// Engine tracks unlocked achievements and runs the checks at session
// end. Checks are idempotent: an unlocked achievement is never
// re-evaluated or re-awarded.
type Engine struct {
	store    *storage.Store
	progress *progress.Engine
	unlocked map[string]Record
}

// NewEngine loads the unlocked set from st.
func NewEngine(st *storage.Store, prog *progress.Engine) *Engine {
	e := &Engine{
		store:    st,
		progress: prog,
		unlocked: make(map[string]Record),
	}
	var saved map[string]Record
	if st.Get(storage.KeyAchievements, &saved) && saved != nil {
		e.unlocked = saved
	}
	return e
}

// Unlocked reports whether the achievement with id has been earned.
func (e *Engine) Unlocked(id string) bool {
	_, ok := e.unlocked[id]
	return ok
}

// UnlockedAt returns when id was earned, zero if it was not.
func (e *Engine) UnlockedAt(id string) time.Time {
	return e.unlocked[id].UnlockedAt
}

// CheckAll evaluates every locked achievement against the current
// profile and res, persists new unlocks, adds their star rewards to
// the profile, and returns the newly unlocked achievements in order.
func (e *Engine) CheckAll(res *session.Result) []Achievement {
	ctx := Context{
		Profile:  e.progress.Profile(),
		Session:  res,
		Progress: e.progress,
	}

	var newly []Achievement
	stars := 0
	for _, a := range All {
		if e.Unlocked(a.ID) || !a.Check(ctx) {
			continue
		}
		e.unlocked[a.ID] = Record{UnlockedAt: time.Now()}
		stars += a.Stars
		newly = append(newly, a)
	}
	if len(newly) == 0 {
		return nil
	}

	e.store.Set(storage.KeyAchievements, e.unlocked)
	e.progress.AwardStars(stars)
	return newly
}
