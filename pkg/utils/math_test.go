package utils

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{4, 0, -1, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(-1, 0, 5); got != 0 {
		t.Errorf("ClampInt(-1, 0, 5) = %d, want 0", got)
	}
	if got := ClampInt(7, 0, 5); got != 5 {
		t.Errorf("ClampInt(7, 0, 5) = %d, want 5", got)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(400, 800, 80); got != 40 {
		t.Errorf("Scale(400, 800, 80) = %v, want 40", got)
	}
	if got := Scale(1, 0, 80); got != 0 {
		t.Errorf("Scale with zero span = %v, want 0", got)
	}
}
