package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

type subtractionGen struct {
	rng        *rand.Rand
	level      int
	maxMinuend int
	choices    int
	used       map[string]bool
	lastB      int
}

func newSubtraction(cfg LevelConfig, rng *rand.Rand) *subtractionGen {
	level := cfg.Level
	if level < 1 {
		level = 1
	}
	choices := cfg.AnswerChoices
	if choices < 2 {
		choices = 4
	}
	return &subtractionGen{
		rng:        rng,
		level:      level,
		maxMinuend: sumBand(level),
		choices:    choices,
		used:       make(map[string]bool),
	}
}

func (g *subtractionGen) Generate() *Question {
	var a, b int
	var key string
	for attempts := 0; ; attempts++ {
		switch {
		case g.maxMinuend <= 20:
			a = randInt(g.rng, max(2, g.level*2), g.maxMinuend)
			b = randInt(g.rng, 1, a-1)
		case g.maxMinuend <= 50:
			a = randInt(g.rng, 10, g.maxMinuend)
			b = randInt(g.rng, 2, a-1)
		default:
			a = randInt(g.rng, 20, g.maxMinuend)
			b = randInt(g.rng, 5, a-1)
		}
		key = fmt.Sprintf("%d-%d", a, b)
		if !g.used[key] || attempts >= 20 {
			break
		}
	}
	g.used[key] = true
	g.lastB = b

	correct := a - b
	distractors := g.distractors(correct, g.choices-1)
	return &Question{
		Operation:     facts.Subtraction,
		Operands:      [2]int{a, b},
		Text:          fmt.Sprintf("%d − %d", a, b),
		CorrectAnswer: correct,
		Choices:       buildChoices(g.rng, correct, distractors),
		FactKey:       key,
	}
}

// distractors models common subtraction mistakes: adding instead of
// subtracting, borrow errors off by 10, and off-by-one slips.
// Zero is a legal distractor here since differences can reach zero.
func (g *subtractionGen) distractors(correct, count int) []int {
	lastB := g.lastB
	if lastB < 1 {
		lastB = 1
	}
	// For a - b = c the addition confusion a + b equals c + 2b.
	cands := []int{correct + 2*lastB, correct + 10}
	if correct > 10 {
		cands = append(cands, correct-10)
	}
	cands = append(cands, correct+1, correct-1, correct+2)
	if correct > 2 {
		cands = append(cands, correct-2)
	}

	return filterDistractors(g.rng, cands, correct, count, 0, func() int {
		return correct + randInt(g.rng, -8, 8)
	})
}

func (g *subtractionGen) Hints(q *Question) []string {
	a, b := q.Operands[0], q.Operands[1]
	if a <= 20 {
		return []string{
			fmt.Sprintf("Start at %d and count back %d", a, b),
			fmt.Sprintf("Think: what + %d = %d?", b, a),
			fmt.Sprintf("%d − %d = %d", a, b, q.CorrectAnswer),
		}
	}
	return []string{
		"Try subtracting the tens first, then the ones",
		fmt.Sprintf("Think: what number plus %d equals %d?", b, a),
		fmt.Sprintf("%d − %d = %d", a, b, q.CorrectAnswer),
	}
}

func (g *subtractionGen) Reset() {
	clear(g.used)
	g.lastB = 0
}
