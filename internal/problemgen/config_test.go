package problemgen

import (
	"testing"

	"github.com/syduan2016/space-math-adventure/internal/facts"
)

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Beginner"}, {3, "Beginner"},
		{4, "Intermediate"}, {6, "Intermediate"},
		{7, "Advanced"}, {9, "Advanced"},
	}
	for _, tt := range tests {
		if got := TierForLevel(tt.level); got.Name != tt.want {
			t.Errorf("TierForLevel(%d) = %s, want %s", tt.level, got.Name, tt.want)
		}
	}
}

func TestBuildLevelConfig(t *testing.T) {
	cfg := BuildLevelConfig(facts.Multiplication, 7)
	if cfg.Table != 7 {
		t.Errorf("table = %d, want 7", cfg.Table)
	}
	if cfg.Label != "7 Times Table" {
		t.Errorf("label = %q", cfg.Label)
	}
	if cfg.AnswerChoices != 4 || cfg.QuestionsPerGame != 18 || cfg.LivesCount != 3 {
		t.Errorf("advanced tier not applied: %+v", cfg)
	}
	if cfg.TimeBonusMs != 2500 {
		t.Errorf("timeBonus = %d, want 2500", cfg.TimeBonusMs)
	}

	beginner := BuildLevelConfig(facts.Addition, 2)
	if beginner.Label != "Sums to 15" {
		t.Errorf("label = %q", beginner.Label)
	}
	if beginner.AnswerChoices != 3 || beginner.LivesCount != 5 || beginner.QuestionsPerGame != 12 {
		t.Errorf("beginner tier not applied: %+v", beginner)
	}
}

func TestBuildLevelConfigUnknownLevel(t *testing.T) {
	cfg := BuildLevelConfig(facts.Multiplication, 12)
	if cfg.Label != "Level 12" || cfg.Table != 12 {
		t.Errorf("fallback config = %+v", cfg)
	}
}
