// internal/entity/tile.go
package entity

import (
	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/system"
)

// Tile is a static brick. A hit flips the ball vertically, whichever face was
// struck, and destroys the tile.
type Tile struct {
	Position  component.Position
	Width     float64
	Height    float64
	Destroyed bool

	ball   *Ball
	events *event.Dispatcher
}

// NewTile creates an unbound tile; Tiles.Reset binds it to a ball.
func NewTile(pos component.Position, width, height float64) Tile {
	return Tile{Position: pos, Width: width, Height: height}
}

// Box is the tile's collision rectangle.
func (t *Tile) Box() component.Box {
	return component.Box{Position: t.Position, Width: t.Width, Height: t.Height}
}

func (t *Tile) Update(deltaTime float64) {
	if t.Destroyed || t.ball == nil {
		return
	}
	if system.Collides(t.ball.Square(), t.Box()) {
		t.ball.BounceVertical()
		t.Destroyed = true
		t.events.Emit(event.TileDestroyed, t.Position)
	}
}

func (t *Tile) Draw(surface render.Surface) {
	surface.DrawSprite(render.SpriteTile, t.Position.X, t.Position.Y, t.Width, t.Height)
}
