package session

import "testing"

func TestStars(t *testing.T) {
	tests := []struct {
		accuracy, want int
	}{
		{100, 3}, {99, 2}, {80, 2}, {79, 1}, {60, 1}, {59, 0}, {0, 0},
	}
	for _, tt := range tests {
		if got := Stars(tt.accuracy); got != tt.want {
			t.Errorf("Stars(%d) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestComboMultiplier(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1}, {2, 1}, {3, 1.5}, {4, 1.5}, {5, 2}, {9, 2}, {10, 3}, {25, 3},
	}
	for _, tt := range tests {
		if got := ComboMultiplier(tt.streak); got != tt.want {
			t.Errorf("ComboMultiplier(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	if got := Points(0, false, false); got != 100 {
		t.Errorf("base points = %d, want 100", got)
	}
	if got := Points(0, true, false); got != 150 {
		t.Errorf("speed bonus points = %d, want 150", got)
	}
	if got := Points(3, true, false); got != 225 {
		t.Errorf("combo points = %d, want 225", got)
	}
	if got := Points(10, true, false); got != 450 {
		t.Errorf("max combo points = %d, want 450", got)
	}
	if got := Points(3, true, true); got != 112 {
		t.Errorf("practice points = %d, want 112", got)
	}
}
