// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

const (
	LifeDiameter   = config.LifeRadius * 2
	LostLifeInset  = 3.0
	LivesTextSpace = 8.0
)

// LivesIndicator shows the remaining lives as a row of circles followed by
// a "lives/max" counter.
type LivesIndicator struct {
	X, Y float64
}

// NewLivesIndicator creates a lives indicator anchored at its top-left corner.
func NewLivesIndicator(x, y float64) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw draws one circle per life; lost lives are small grey squares.
func (i *LivesIndicator) Draw(surface render.Surface, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		x := i.X + float64(j)*(LifeDiameter+config.LifeSpacing)
		if j < lives {
			surface.DrawSprite(render.SpriteLife, x, i.Y, LifeDiameter, LifeDiameter)
			continue
		}
		size := LifeDiameter - 2*LostLifeInset
		surface.FillRect(x+LostLifeInset, i.Y+LostLifeInset, size, size, config.LostLifeColor)
	}

	livesText := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	surface.DrawText(livesText, i.X+i.Width(maxLives)+LivesTextSpace, i.Y+LifeDiameter,
		render.Font{Size: config.HUDFontSize}, render.AlignLeft, config.TextColor)
}

// Width returns the width of the circle row for maxLives lives.
func (i *LivesIndicator) Width(maxLives int) float64 {
	if maxLives <= 0 {
		return 0
	}
	return float64(maxLives)*LifeDiameter + float64(maxLives-1)*config.LifeSpacing
}
