package problemgen

import (
	"time"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// Question represents one arithmetic prompt ready for display.
type Question struct {
	// Operation is the arithmetic family the question belongs to.
	Operation facts.Operation `json:"operation"`

	// Operands are the two numbers in display order, e.g. {7, 8} for
	// "7 × 8" or {42, 6} for "42 ÷ 6".
	Operands [2]int `json:"operands"`

	// Text is the prompt shown to the player, e.g. "7 × 8".
	Text string `json:"questionText"`

	// CorrectAnswer is the expected result.
	CorrectAnswer int `json:"correctAnswer"`

	// Choices holds the shuffled answer options. The correct answer
	// appears exactly once and no value repeats.
	Choices []int `json:"answers"`

	// FactKey identifies the underlying fact for the ledger,
	// e.g. "7x8". The ledger normalizes operand order itself.
	FactKey string `json:"factKey"`

	// Set once the question is answered; a copy is then appended to
	// the session history and never mutated again.
	AnsweredAt     time.Time `json:"answeredAt"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs float64   `json:"responseTime"`
}
