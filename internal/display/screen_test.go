package display

import (
	"testing"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

func TestAlignedX(t *testing.T) {
	tests := []struct {
		align render.Align
		want  float64
	}{
		{render.AlignLeft, 400},
		{render.AlignCenter, 350},
		{render.AlignRight, 300},
	}
	for _, tt := range tests {
		if got := alignedX(400, 100, tt.align); got != tt.want {
			t.Errorf("alignedX(align %d) = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestFallbackColor(t *testing.T) {
	if got := fallbackColor(render.SpriteTile); got != config.TileColor {
		t.Errorf("tile fallback = %v, want %v", got, config.TileColor)
	}
	if got := fallbackColor(render.Sprite(42)); got != config.TextColor {
		t.Errorf("unknown sprite fallback = %v", got)
	}
}
