package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

type additionGen struct {
	rng     *rand.Rand
	level   int
	maxSum  int
	choices int
	used    map[string]bool
}

func newAddition(cfg LevelConfig, rng *rand.Rand) *additionGen {
	level := cfg.Level
	if level < 1 {
		level = 1
	}
	choices := cfg.AnswerChoices
	if choices < 2 {
		choices = 4
	}
	return &additionGen{
		rng:     rng,
		level:   level,
		maxSum:  sumBand(level),
		choices: choices,
		used:    make(map[string]bool),
	}
}

// sumBand caps the sum by level: 1-3 to 20, 4-6 to 50, 7+ to 100.
func sumBand(level int) int {
	if level <= 3 {
		return 20
	}
	if level <= 6 {
		return 50
	}
	return 100
}

func (g *additionGen) Generate() *Question {
	var a, b int
	var key string
	for attempts := 0; ; attempts++ {
		switch {
		case g.maxSum <= 20:
			a = randInt(g.rng, 1, min(g.level*3+2, 10))
			b = randInt(g.rng, 1, min(g.maxSum-a, 10))
		case g.maxSum <= 50:
			a = randInt(g.rng, 2, min((g.level-3)*10+10, 30))
			b = randInt(g.rng, 2, min(g.maxSum-a, 25))
		default:
			a = randInt(g.rng, 5, 60)
			b = randInt(g.rng, 5, min(g.maxSum-a, 50))
		}
		key = fmt.Sprintf("%d+%d", a, b)
		if !g.used[key] || attempts >= 20 {
			break
		}
	}
	g.used[key] = true

	correct := a + b
	distractors := g.distractors(correct, g.choices-1)
	return &Question{
		Operation:     facts.Addition,
		Operands:      [2]int{a, b},
		Text:          fmt.Sprintf("%d + %d", a, b),
		CorrectAnswer: correct,
		Choices:       buildChoices(g.rng, correct, distractors),
		FactKey:       key,
	}
}

// distractors models common addition mistakes: transposed digits,
// carry errors off by 10, and off-by-one slips.
func (g *additionGen) distractors(correct, count int) []int {
	var cands []int
	if correct >= 10 && correct < 100 {
		tens := correct / 10
		ones := correct % 10
		if ones != tens {
			cands = append(cands, ones*10+tens)
		}
	}
	cands = append(cands, correct+10)
	if correct > 10 {
		cands = append(cands, correct-10)
	}
	cands = append(cands, correct+1, correct-1, correct+2, correct-2)

	return filterDistractors(g.rng, cands, correct, count, 1, func() int {
		return correct + randInt(g.rng, -10, 10)
	})
}

func (g *additionGen) Hints(q *Question) []string {
	a, b := q.Operands[0], q.Operands[1]
	if a+b <= 20 {
		return []string{
			fmt.Sprintf("Start at %d and count up %d more", a, b),
			fmt.Sprintf("Break it down: %d + %d = ?", a, b),
			fmt.Sprintf("%d + %d = %d", a, b, q.CorrectAnswer),
		}
	}
	tens := a / 10 * 10
	ones := a % 10
	return []string{
		"Try adding the tens first, then the ones",
		fmt.Sprintf("%d + %d = %d, then add %d more", tens, b, tens+b, ones),
		fmt.Sprintf("%d + %d = %d", a, b, q.CorrectAnswer),
	}
}

func (g *additionGen) Reset() {
	clear(g.used)
}
