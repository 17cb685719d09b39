package ui

import (
	"testing"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/input"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/state"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLivesIndicator(t *testing.T) {
	var rec render.Recorder
	NewLivesIndicator(10, 10).Draw(&rec, 2, 3)

	if got := rec.Count(render.OpSprite); got != 2 {
		t.Errorf("life sprites = %d, want 2", got)
	}
	if got := rec.Count(render.OpFillRect); got != 1 {
		t.Errorf("lost-life marks = %d, want 1", got)
	}
	if texts := rec.Texts(); len(texts) != 1 || texts[0] != "2/3" {
		t.Errorf("texts = %v", texts)
	}

	second := rec.Calls[1]
	if want := 10 + LifeDiameter + config.LifeSpacing; second.X != want {
		t.Errorf("second life at x=%v, want %v", second.X, want)
	}
}

func TestLevelIndicatorOutline(t *testing.T) {
	var rec render.Recorder
	NewLevelIndicator(790, 26, 14).Draw(&rec, 1)

	texts := rec.Texts()
	if len(texts) != 9 {
		t.Fatalf("texts = %d, want 8 outline passes and the label", len(texts))
	}
	last := rec.Calls[len(rec.Calls)-1]
	if last.Text != "Level II" || last.Align != render.AlignRight || last.X != 790 || last.Color != config.LifeColor {
		t.Errorf("label = %+v", last)
	}

	rec.Reset()
	ind := NewLevelIndicator(790, 26, 14)
	ind.OutlineThickness = 0
	ind.Draw(&rec, 0)
	if texts := rec.Texts(); len(texts) != 1 || texts[0] != "Level I" {
		t.Errorf("texts = %v", texts)
	}
}

type fakeGame struct {
	st    state.State
	lives int
	level int
}

func (f *fakeGame) Apply(input.Command) {}
func (f *fakeGame) Update(float64)      {}
func (f *fakeGame) Draw(render.Surface) {}
func (f *fakeGame) State() state.State  { return f.st }
func (f *fakeGame) Lives() int          { return f.lives }
func (f *fakeGame) Level() int          { return f.level }

func TestHUDHiddenBehindSolidOverlays(t *testing.T) {
	hud := NewHUD(config.Default())
	tests := []struct {
		st      state.State
		visible bool
	}{
		{state.Menu, false},
		{state.Running, true},
		{state.Paused, true},
		{state.GameOver, false},
	}
	for _, tt := range tests {
		var rec render.Recorder
		hud.Draw(&rec, &fakeGame{st: tt.st, lives: 3, level: 2})
		if got := len(rec.Calls) > 0; got != tt.visible {
			t.Errorf("%v: drawn = %v, want %v", tt.st, got, tt.visible)
		}
	}
}
