package session

// Scoring constants.
const (
	BasePoints        = 100
	SpeedBonusPoints  = 50
	PerfectRoundBonus = 1000
)

// Star accuracy thresholds.
const (
	OneStarAccuracy   = 60
	TwoStarAccuracy   = 80
	ThreeStarAccuracy = 100
)

// Stars converts session accuracy to a 0-3 star rating.
func Stars(accuracy int) int {
	switch {
	case accuracy >= ThreeStarAccuracy:
		return 3
	case accuracy >= TwoStarAccuracy:
		return 2
	case accuracy >= OneStarAccuracy:
		return 1
	default:
		return 0
	}
}

// ComboMultiplier returns the score multiplier for a correct-answer
// streak.
func ComboMultiplier(streak int) float64 {
	switch {
	case streak >= 10:
		return 3.0
	case streak >= 5:
		return 2.0
	case streak >= 3:
		return 1.5
	default:
		return 1.0
	}
}

// Points computes the score for one correct answer: base plus speed
// bonus, multiplied by the combo multiplier and floored, then halved
// in practice mode.
func Points(streak int, speedBonus, practiceMode bool) int {
	pts := BasePoints
	if speedBonus {
		pts += SpeedBonusPoints
	}
	scored := int(float64(pts) * ComboMultiplier(streak))
	if practiceMode {
		scored /= 2
	}
	return scored
}
