package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// mixedGen holds one sub-generator per operation and picks one
// uniformly per question. Multiplication tables and divisors are
// re-randomized on every draw so mixed mode covers the full operand
// space instead of a fixed table.
type mixedGen struct {
	rng            *rand.Rand
	multiplication *multiplicationGen
	addition       *additionGen
	subtraction    *subtractionGen
	division       *divisionGen
}

func newMixed(cfg LevelConfig, rng *rand.Rand) *mixedGen {
	mulCfg := cfg
	mulCfg.Table = randInt(rng, 1, 9)
	divCfg := cfg
	divCfg.Table = randInt(rng, 1, 9)
	return &mixedGen{
		rng:            rng,
		multiplication: newMultiplication(mulCfg, rng),
		addition:       newAddition(cfg, rng),
		subtraction:    newSubtraction(cfg, rng),
		division:       newDivision(divCfg, rng),
	}
}

func (g *mixedGen) Generate() *Question {
	switch g.rng.IntN(4) {
	case 0:
		g.multiplication.table = randInt(g.rng, 1, 9)
		return g.multiplication.Generate()
	case 1:
		return g.addition.Generate()
	case 2:
		return g.subtraction.Generate()
	default:
		g.division.divisor = randInt(g.rng, 1, 9)
		return g.division.Generate()
	}
}

func (g *mixedGen) Hints(q *Question) []string {
	switch q.Operation {
	case facts.Multiplication:
		return g.multiplication.Hints(q)
	case facts.Addition:
		return g.addition.Hints(q)
	case facts.Subtraction:
		return g.subtraction.Hints(q)
	case facts.Division:
		return g.division.Hints(q)
	}
	return []string{fmt.Sprintf("The answer is %d", q.CorrectAnswer)}
}

func (g *mixedGen) Reset() {
	g.multiplication.Reset()
	g.addition.Reset()
	g.subtraction.Reset()
	g.division.Reset()
}
