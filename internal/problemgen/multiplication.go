package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

type multiplicationGen struct {
	rng     *rand.Rand
	table   int
	choices int
	used    map[int]bool
}

func newMultiplication(cfg LevelConfig, rng *rand.Rand) *multiplicationGen {
	table := cfg.Table
	if table < 1 {
		table = 1
	}
	choices := cfg.AnswerChoices
	if choices < 2 {
		choices = 4
	}
	return &multiplicationGen{
		rng:     rng,
		table:   table,
		choices: choices,
		used:    make(map[int]bool),
	}
}

func (g *multiplicationGen) Generate() *Question {
	if len(g.used) >= 9 {
		clear(g.used)
	}
	multiplier := randInt(g.rng, 1, 9)
	for attempts := 0; g.used[multiplier] && attempts < 10; attempts++ {
		multiplier = randInt(g.rng, 1, 9)
	}
	g.used[multiplier] = true

	correct := g.table * multiplier
	distractors := g.distractors(correct, g.choices-1)
	return &Question{
		Operation:     facts.Multiplication,
		Operands:      [2]int{g.table, multiplier},
		Text:          fmt.Sprintf("%d × %d", g.table, multiplier),
		CorrectAnswer: correct,
		Choices:       buildChoices(g.rng, correct, distractors),
		FactKey:       fmt.Sprintf("%dx%d", g.table, multiplier),
	}
}

// distractors models common multiplication mistakes: neighbor tables,
// adding instead of multiplying, and nearby multiples.
func (g *multiplicationGen) distractors(correct, count int) []int {
	multiplier := correct / g.table
	var cands []int
	if g.table > 1 {
		cands = append(cands, (g.table-1)*multiplier)
	}
	if g.table < 9 {
		cands = append(cands, (g.table+1)*multiplier)
	}
	cands = append(cands,
		correct+g.table,
		correct-g.table,
		correct+1,
		correct-1,
	)
	if correct >= 10 {
		cands = append(cands, correct+10, correct-10)
	}
	cands = append(cands, correct+g.table*2, correct-g.table*2)

	return filterDistractors(g.rng, cands, correct, count, 1, func() int {
		return correct + randInt(g.rng, -15, 15)
	})
}

func (g *multiplicationGen) Hints(q *Question) []string {
	a, b := q.Operands[0], q.Operands[1]
	steps := make([]string, b)
	for i := range steps {
		steps[i] = strconv.Itoa(a * (i + 1))
	}
	return []string{
		fmt.Sprintf("Think: %d groups of %d", a, b),
		fmt.Sprintf("Count by %ds: %s", a, strings.Join(steps, ", ")),
		fmt.Sprintf("%d × %d = %d", a, b, q.CorrectAnswer),
	}
}

func (g *multiplicationGen) Reset() {
	clear(g.used)
}
