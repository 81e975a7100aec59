package problemgen

import (
	"math/rand/v2"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// Generator produces questions for one operation. Implementations
// keep per-session anti-repeat state; Reset clears it.
type Generator interface {
	// Generate returns the next question with shuffled answer choices.
	// The correct answer is always present exactly once.
	Generate() *Question

	// Hints returns hints for q ordered from vaguest to most explicit.
	// The last entry always reveals the full equation.
	Hints(q *Question) []string

	// Reset clears anti-repeat state for a new session.
	Reset()
}

// New builds the generator for cfg's operation. An unrecognized
// operation falls back to multiplication.
func New(cfg LevelConfig, rng *rand.Rand) Generator {
	switch cfg.Operation {
	case facts.Addition:
		return newAddition(cfg, rng)
	case facts.Subtraction:
		return newSubtraction(cfg, rng)
	case facts.Division:
		return newDivision(cfg, rng)
	case facts.Mixed:
		return newMixed(cfg, rng)
	default:
		return newMultiplication(cfg, rng)
	}
}

// randInt returns a uniform integer in [min, max].
func randInt(rng *rand.Rand, min, max int) int {
	return rng.IntN(max-min+1) + min
}

// buildChoices combines the correct answer with distractors and
// shuffles the result.
func buildChoices(rng *rand.Rand, correct int, distractors []int) []int {
	choices := make([]int, 0, len(distractors)+1)
	choices = append(choices, correct)
	choices = append(choices, distractors...)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// filterDistractors keeps candidates that are at least floor, not the
// correct answer, and unique, then pads with pad() values until count
// is reached. The result is shuffled and truncated to count.
func filterDistractors(rng *rand.Rand, candidates []int, correct, count, floor int, pad func() int) []int {
	seen := make(map[int]bool, len(candidates))
	valid := make([]int, 0, count)
	for _, d := range candidates {
		if d < floor || d == correct || seen[d] {
			continue
		}
		seen[d] = true
		valid = append(valid, d)
	}
	for len(valid) < count {
		r := pad()
		if r < floor || r == correct || seen[r] {
			continue
		}
		seen[r] = true
		valid = append(valid, r)
	}
	rng.Shuffle(len(valid), func(i, j int) {
		valid[i], valid[j] = valid[j], valid[i]
	})
	return valid[:count]
}
