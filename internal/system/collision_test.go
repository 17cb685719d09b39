package system

import (
	"testing"

	"go-brick-breaker/internal/component"
)

func square(x, y, size float64) component.Square {
	return component.Square{Position: component.Position{X: x, Y: y}, Size: size}
}

func box(x, y, w, h float64) component.Box {
	return component.Box{Position: component.Position{X: x, Y: y}, Width: w, Height: h}
}

func TestCollides(t *testing.T) {
	tile := box(80, 75, 80, 24)

	tests := []struct {
		name   string
		moving component.Square
		want   bool
	}{
		{"fully inside", square(90, 70, 25), true},
		{"touching top edge", square(100, 50, 25), true},
		{"touching bottom edge", square(100, 99, 25), true},
		{"flush with both sides", square(80, 80, 80), true},
		{"overlaps left edge", square(70, 80, 25), false},
		{"overlaps right edge", square(150, 80, 25), false},
		{"wider than rect", square(75, 80, 90), false},
		{"above", square(100, 40, 25), false},
		{"below", square(100, 100, 25), false},
		{"far away", square(400, 400, 25), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.moving, tile); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.moving, got, tt.want)
			}
		})
	}
}

func TestCollidesIsAsymmetric(t *testing.T) {
	// Standard AABB overlap holds here, the containment rule does not.
	a := square(140, 80, 25)
	b := box(80, 75, 80, 24)
	if Collides(a, b) {
		t.Fatal("partial horizontal overlap must not collide")
	}
}
