package problemgen

import (
	"fmt"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

// DifficultyTier bundles the pacing knobs shared by a band of levels.
type DifficultyTier struct {
	Name             string
	EnemySpeed       float64
	AnswerChoices    int
	QuestionsPerGame int
	Lives            int
	TimeBonusMs      int
}

var (
	TierBeginner = DifficultyTier{
		Name:             "Beginner",
		EnemySpeed:       1,
		AnswerChoices:    3,
		QuestionsPerGame: 12,
		Lives:            5,
		TimeBonusMs:      3000,
	}
	TierIntermediate = DifficultyTier{
		Name:             "Intermediate",
		EnemySpeed:       1.5,
		AnswerChoices:    4,
		QuestionsPerGame: 15,
		Lives:            3,
		TimeBonusMs:      3000,
	}
	TierAdvanced = DifficultyTier{
		Name:             "Advanced",
		EnemySpeed:       2,
		AnswerChoices:    4,
		QuestionsPerGame: 18,
		Lives:            3,
		TimeBonusMs:      2500,
	}
)

// TierForLevel maps a level to its difficulty band: 1-3 beginner,
// 4-6 intermediate, 7+ advanced.
func TierForLevel(level int) DifficultyTier {
	switch {
	case level <= 3:
		return TierBeginner
	case level <= 6:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// LevelConfig is the complete configuration for one game session.
// All fields are explicit; BuildLevelConfig fills the defaults.
type LevelConfig struct {
	Operation        facts.Operation
	Level            int
	Label            string
	Table            int
	AnswerChoices    int
	QuestionsPerGame int
	LivesCount       int
	EnemySpeed       float64
	TimeBonusMs      int
	PracticeMode     bool
}

// LevelDef is one selectable level within an operation.
type LevelDef struct {
	Level int
	Label string
	Table int
}

// MaxLevel is the highest level of every operation.
const MaxLevel = 9

// Levels lists the selectable levels per operation, in order.
var Levels = map[facts.Operation][]LevelDef{
	facts.Multiplication: {
		{1, "1 Times Table", 1},
		{2, "2 Times Table", 2},
		{3, "3 Times Table", 3},
		{4, "4 Times Table", 4},
		{5, "5 Times Table", 5},
		{6, "6 Times Table", 6},
		{7, "7 Times Table", 7},
		{8, "8 Times Table", 8},
		{9, "9 Times Table", 9},
	},
	facts.Addition: {
		{1, "Sums to 10", 0},
		{2, "Sums to 15", 0},
		{3, "Sums to 20", 0},
		{4, "Sums to 30", 0},
		{5, "Sums to 40", 0},
		{6, "Sums to 50", 0},
		{7, "Sums to 70", 0},
		{8, "Sums to 85", 0},
		{9, "Sums to 100", 0},
	},
	facts.Subtraction: {
		{1, "Within 10", 0},
		{2, "Within 15", 0},
		{3, "Within 20", 0},
		{4, "Within 30", 0},
		{5, "Within 40", 0},
		{6, "Within 50", 0},
		{7, "Within 70", 0},
		{8, "Within 85", 0},
		{9, "Within 100", 0},
	},
	facts.Division: {
		{1, "Divide by 1", 1},
		{2, "Divide by 2", 2},
		{3, "Divide by 3", 3},
		{4, "Divide by 4", 4},
		{5, "Divide by 5", 5},
		{6, "Divide by 6", 6},
		{7, "Divide by 7", 7},
		{8, "Divide by 8", 8},
		{9, "Divide by 9", 9},
	},
	facts.Mixed: {
		{1, "Easy Mix", 0},
		{2, "Getting Warmer", 0},
		{3, "Nice Mix", 0},
		{4, "Stepping Up", 0},
		{5, "Challenge Mix", 0},
		{6, "Brain Buster", 0},
		{7, "Expert Mix", 0},
		{8, "Master Mix", 0},
		{9, "Ultimate Mix", 0},
	},
}

// BuildLevelConfig assembles the session configuration for an
// operation and level, merging the level definition with its
// difficulty tier.
func BuildLevelConfig(op facts.Operation, level int) LevelConfig {
	tier := TierForLevel(level)
	cfg := LevelConfig{
		Operation:        op,
		Level:            level,
		Label:            fmt.Sprintf("Level %d", level),
		Table:            level,
		AnswerChoices:    tier.AnswerChoices,
		QuestionsPerGame: tier.QuestionsPerGame,
		LivesCount:       tier.Lives,
		EnemySpeed:       tier.EnemySpeed,
		TimeBonusMs:      tier.TimeBonusMs,
	}
	for _, def := range Levels[op] {
		if def.Level == level {
			cfg.Label = def.Label
			if def.Table != 0 {
				cfg.Table = def.Table
			}
			break
		}
	}
	return cfg
}
