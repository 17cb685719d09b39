// internal/entity/ball.go
package entity

import (
	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/system"
)

// Ball moves in straight lines and reflects off the walls, the paddle and
// tiles. Bounces only flip the sign of a velocity component.
type Ball struct {
	Position component.Position
	Velocity component.Velocity
	Size     float64

	start      component.Position
	startSpeed component.Velocity
	gameWidth  float64
	gameHeight float64
	paddle     *Paddle
	events     *event.Dispatcher
}

// NewBall creates a ball at its start point. paddle may be nil for a ball
// that only bounces off walls; events may be nil.
func NewBall(s config.Settings, paddle *Paddle, events *event.Dispatcher) *Ball {
	b := &Ball{
		Size:       s.Ball.Size,
		start:      component.Position{X: s.Ball.StartX, Y: s.Ball.StartY},
		startSpeed: component.Velocity{X: s.Ball.SpeedX, Y: s.Ball.SpeedY},
		gameWidth:  s.Width,
		gameHeight: s.Height,
		paddle:     paddle,
		events:     events,
	}
	b.Reset()
	return b
}

// Reset puts the ball back at its start point with the initial velocity.
func (b *Ball) Reset() {
	b.Position = b.start
	b.Velocity = b.startSpeed
}

// Square is the ball's collision shape.
func (b *Ball) Square() component.Square {
	return component.Square{Position: b.Position, Size: b.Size}
}

// BounceVertical flips the vertical direction.
func (b *Ball) BounceVertical() {
	b.Velocity.Y = -b.Velocity.Y
}

// Update advances the ball one frame. The checks run in a fixed order and the
// paddle check runs last, so a paddle hit in the same frame as a bottom exit
// wins over the reset position.
func (b *Ball) Update(deltaTime float64) {
	b.Position = b.Position.Add(b.Velocity)

	if b.Position.X > b.gameWidth-b.Size || b.Position.X < 0 {
		b.Velocity.X = -b.Velocity.X
		b.events.Emit(event.WallBounce, nil)
	}

	if b.Position.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.events.Emit(event.WallBounce, nil)
	}

	if b.Position.Y > b.gameHeight-b.Size {
		b.events.Emit(event.LifeLost, nil)
		b.Reset()
	}

	if b.paddle != nil && system.Collides(b.Square(), b.paddle.Box()) {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = b.paddle.Position.Y - b.Size
		b.events.Emit(event.PaddleHit, nil)
	}
}

func (b *Ball) Draw(surface render.Surface) {
	surface.DrawSprite(render.SpriteBall, b.Position.X, b.Position.Y, b.Size, b.Size)
}
