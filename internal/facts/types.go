package facts

import "time"

// Operation identifies an arithmetic operation family.
type Operation string

const (
	Multiplication Operation = "multiplication"
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Division       Operation = "division"
	Mixed          Operation = "mixed"
	Unknown        Operation = "unknown"
)

// Symbol returns the operator symbol used in fact keys.
func (o Operation) Symbol() string {
	switch o {
	case Multiplication:
		return "x"
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Division:
		return "/"
	}
	return "?"
}

// Commutative reports whether operand order is irrelevant for o.
func (o Operation) Commutative() bool {
	return o == Multiplication || o == Addition
}

// MasteryLevel is the proficiency tier of a single fact, derived from
// attempt count and accuracy.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryFamiliar MasteryLevel = "familiar"
	MasteryMastered MasteryLevel = "mastered"
)

// Rank orders mastery levels from least to most proficient.
func (m MasteryLevel) Rank() int {
	switch m {
	case MasteryLearning:
		return 1
	case MasteryFamiliar:
		return 2
	case MasteryMastered:
		return 3
	}
	return 0
}

// DefaultWeights is the sampling weight per mastery level used by
// weighted question selection. Weaker facts draw more often.
var DefaultWeights = map[MasteryLevel]float64{
	MasteryMastered: 1,
	MasteryFamiliar: 3,
	MasteryLearning: 6,
	MasteryNew:      4,
}

// FactRecord is the performance history of one unique fact.
type FactRecord struct {
	Operation     Operation    `json:"operation"`
	Operands      [2]int       `json:"operands"`
	Attempts      int          `json:"attempts"`
	Correct       int          `json:"correct"`
	Incorrect     int          `json:"incorrect"`
	Streak        int          `json:"streak"`
	LastSeen      time.Time    `json:"lastSeen"`
	AvgResponseMs float64      `json:"averageResponseTime"`
	Mastery       MasteryLevel `json:"masteryLevel"`
}

// Accuracy returns percent correct, 0 when unattempted.
func (r *FactRecord) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts) * 100
}

// classify derives the mastery level from attempts and accuracy.
func classify(attempts, correct int) MasteryLevel {
	if attempts < 3 {
		return MasteryNew
	}
	accuracy := float64(correct) / float64(attempts) * 100
	if attempts >= 5 && accuracy > 85 {
		return MasteryMastered
	}
	if accuracy >= 60 {
		return MasteryFamiliar
	}
	return MasteryLearning
}
