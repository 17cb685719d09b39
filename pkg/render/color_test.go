package render

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#0ff", color.RGBA{0, 255, 255, 255}, false},
		{"#00ffff", color.RGBA{0, 255, 255, 255}, false},
		{"00000080", color.RGBA{0, 0, 0, 128}, false},
		{"#fff8", color.RGBA{255, 255, 255, 136}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	base := color.RGBA{200, 100, 0, 255}
	half := color.RGBA{0, 0, 0, 128}
	got := Blend(base, half)
	if got.R != 100 || got.G != 50 || got.B != 0 || got.A != 255 {
		t.Errorf("Blend half black = %v", got)
	}
	if got := Blend(base, color.RGBA{0, 0, 0, 255}); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Blend opaque = %v", got)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}
