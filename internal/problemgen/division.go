package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// divisionGen produces exact divisions only: the dividend is always
// divisor times quotient, never leaving a remainder.
type divisionGen struct {
	rng     *rand.Rand
	divisor int
	choices int
	used    map[int]bool
}

func newDivision(cfg LevelConfig, rng *rand.Rand) *divisionGen {
	divisor := cfg.Table
	if divisor < 1 {
		divisor = max(cfg.Level, 1)
	}
	choices := cfg.AnswerChoices
	if choices < 2 {
		choices = 4
	}
	return &divisionGen{
		rng:     rng,
		divisor: divisor,
		choices: choices,
		used:    make(map[int]bool),
	}
}

func (g *divisionGen) Generate() *Question {
	if len(g.used) >= 9 {
		clear(g.used)
	}
	quotient := randInt(g.rng, 1, 9)
	for attempts := 0; g.used[quotient] && attempts < 10; attempts++ {
		quotient = randInt(g.rng, 1, 9)
	}
	g.used[quotient] = true

	dividend := g.divisor * quotient
	distractors := g.distractors(quotient, g.choices-1)
	return &Question{
		Operation:     facts.Division,
		Operands:      [2]int{dividend, g.divisor},
		Text:          fmt.Sprintf("%d ÷ %d", dividend, g.divisor),
		CorrectAnswer: quotient,
		Choices:       buildChoices(g.rng, quotient, distractors),
		FactKey:       fmt.Sprintf("%d/%d", dividend, g.divisor),
	}
}

// distractors models common division mistakes: adjacent quotients,
// answering with the product, and the divisor itself as a decoy.
func (g *divisionGen) distractors(correct, count int) []int {
	cands := []int{correct + 1}
	if correct > 1 {
		cands = append(cands, correct-1)
	}
	cands = append(cands, correct*g.divisor, correct+2)
	if correct > 2 {
		cands = append(cands, correct-2)
	}
	if g.divisor != correct {
		cands = append(cands, g.divisor)
	}

	return filterDistractors(g.rng, cands, correct, count, 1, func() int {
		return randInt(g.rng, 1, 12)
	})
}

func (g *divisionGen) Hints(q *Question) []string {
	dividend, divisor := q.Operands[0], q.Operands[1]
	steps := make([]string, q.CorrectAnswer)
	for i := range steps {
		steps[i] = strconv.Itoa(divisor * (i + 1))
	}
	return []string{
		fmt.Sprintf("Think: %d times what equals %d?", divisor, dividend),
		fmt.Sprintf("Count by %ds until you reach %d: %s", divisor, dividend, strings.Join(steps, ", ")),
		fmt.Sprintf("%d ÷ %d = %d", dividend, divisor, q.CorrectAnswer),
	}
}

func (g *divisionGen) Reset() {
	clear(g.used)
}
