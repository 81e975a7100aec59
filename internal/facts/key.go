package facts

import (
	"fmt"
	"strconv"
	"strings"
)

var symbolOps = []struct {
	symbol string
	op     Operation
}{
	{"x", Multiplication},
	{"+", Addition},
	{"-", Subtraction},
	{"/", Division},
}

// Key builds the canonical fact key for an operation and operand pair.
// Commutative operations store the smaller operand first so 3x7 and
// 7x3 share one record.
func Key(op Operation, a, b int) string {
	if op.Commutative() && a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d%s%d", a, op.Symbol(), b)
}

// ParseKey splits a fact key into its operation and operands. An
// unparseable key yields Unknown with zero operands rather than an
// error so a stray key can still be recorded.
func ParseKey(key string) (Operation, [2]int) {
	for _, so := range symbolOps {
		idx := strings.Index(key, so.symbol)
		if idx <= 0 {
			continue
		}
		a, errA := strconv.Atoi(key[:idx])
		b, errB := strconv.Atoi(key[idx+len(so.symbol):])
		if errA != nil || errB != nil {
			return Unknown, [2]int{}
		}
		return so.op, [2]int{a, b}
	}
	return Unknown, [2]int{}
}

// NormalizeKey rewrites key in canonical operand order. Keys that do
// not parse are returned unchanged.
func NormalizeKey(key string) string {
	op, operands := ParseKey(key)
	if op == Unknown {
		return key
	}
	return Key(op, operands[0], operands[1])
}
