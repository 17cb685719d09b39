package ui

import (
	"image/color"
	"strings"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

// LevelIndicator shows the current level in Roman numerals.
type LevelIndicator struct {
	X, Y             float64
	FontSize         float64
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewLevelIndicator creates a level indicator right-aligned at x.
func NewLevelIndicator(x, y, fontSize float64) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            config.LifeColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw draws the label for a zero-based level index.
func (i *LevelIndicator) Draw(surface render.Surface, level int) {
	if level < 0 {
		return
	}
	text := "Level " + toRoman(level+1)
	font := render.Font{Size: i.FontSize}

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			surface.DrawText(text, i.X+float64(x), i.Y+float64(y), font, render.AlignRight, i.OutlineColor)
		}
	}

	surface.DrawText(text, i.X, i.Y, font, render.AlignRight, i.Color)
}
