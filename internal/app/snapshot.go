package app

import (
	"fmt"

	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/state"
)

// Snapshot is a comparable summary of the simulation at one frame.
type Snapshot struct {
	Frame        uint64
	State        state.State
	Lives        int
	Level        int
	Tiles        int
	Ball         component.Position
	BallVelocity component.Velocity
	PaddleX      float64
	PaddleSpeed  float64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:        g.frame,
		State:        g.State(),
		Lives:        g.lives,
		Level:        g.currentLevel,
		Tiles:        g.tiles.Len(),
		Ball:         g.ball.Position,
		BallVelocity: g.ball.Velocity,
		PaddleX:      g.paddle.Position.X,
		PaddleSpeed:  g.paddle.Speed(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("frame=%d state=%s lives=%d level=%d tiles=%d ball=(%.0f,%.0f) v=(%.0f,%.0f) paddle=%.0f",
		s.Frame, s.State, s.Lives, s.Level, s.Tiles, s.Ball.X, s.Ball.Y, s.BallVelocity.X, s.BallVelocity.Y, s.PaddleX)
}
