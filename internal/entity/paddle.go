// internal/entity/paddle.go
package entity

import (
	"image/color"

	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/pkg/utils"
)

// Paddle is the player-controlled bar. It only moves horizontally and never
// leaves the field.
type Paddle struct {
	Position component.Position
	Width    float64
	Height   float64
	MaxSpeed float64

	speed     float64
	gameWidth float64
	color     color.Color
}

// NewPaddle places a paddle centred near the bottom of the field.
func NewPaddle(s config.Settings) *Paddle {
	p := &Paddle{
		Width:     s.Paddle.Width,
		Height:    s.Paddle.Height,
		MaxSpeed:  s.Paddle.MaxSpeed,
		gameWidth: s.Width,
		color:     s.PaddleRGBA(),
	}
	p.Position = component.Position{
		X: s.Width/2 - p.Width/2,
		Y: s.Height - p.Height - s.Paddle.BottomMargin,
	}
	return p
}

func (p *Paddle) MoveLeft()  { p.speed = -p.MaxSpeed }
func (p *Paddle) MoveRight() { p.speed = p.MaxSpeed }
func (p *Paddle) Stop()      { p.speed = 0 }

// Speed is the signed horizontal speed: -MaxSpeed, 0 or +MaxSpeed.
func (p *Paddle) Speed() float64 { return p.speed }

// Box is the paddle's collision rectangle.
func (p *Paddle) Box() component.Box {
	return component.Box{Position: p.Position, Width: p.Width, Height: p.Height}
}

// Update moves the paddle one step and clamps it to [0, gameWidth-width].
// Movement is per frame; deltaTime is not used.
func (p *Paddle) Update(deltaTime float64) {
	p.Position.X = utils.Clamp(p.Position.X+p.speed, 0, p.gameWidth-p.Width)
}

func (p *Paddle) Draw(surface render.Surface) {
	surface.FillRect(p.Position.X, p.Position.Y, p.Width, p.Height, p.color)
}
