// internal/entity/entity.go
package entity

import "go-brick-breaker/internal/render"

// Entity is anything the game advances and draws once per frame.
type Entity interface {
	Update(deltaTime float64)
	Draw(surface render.Surface)
}

var (
	_ Entity = (*Paddle)(nil)
	_ Entity = (*Ball)(nil)
	_ Entity = (*Tile)(nil)
	_ Entity = (*Tiles)(nil)
)
