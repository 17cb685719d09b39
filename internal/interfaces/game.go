package interfaces

import (
	"go-brick-breaker/internal/input"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/state"
)

// Controller is what a frontend drives: commands in, one Update per tick,
// one Draw per frame.
type Controller interface {
	input.Handler
	Update(deltaTime float64)
	Draw(surface render.Surface)
	State() state.State
	Lives() int
	Level() int
}
