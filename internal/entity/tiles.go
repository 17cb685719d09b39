package entity

import (
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/render"
)

// Tiles owns the tiles of the current level. Destroyed tiles stay in place
// until Compact, which the game calls once at the end of every frame.
type Tiles struct {
	items  []Tile
	ball   *Ball
	events *event.Dispatcher
}

// NewTiles creates an empty set whose tiles will collide with ball.
func NewTiles(ball *Ball, events *event.Dispatcher) *Tiles {
	return &Tiles{ball: ball, events: events}
}

// Reset discards the current tiles and takes ownership of copies of tiles.
func (ts *Tiles) Reset(tiles []Tile) {
	ts.items = make([]Tile, len(tiles))
	copy(ts.items, tiles)
	for i := range ts.items {
		ts.items[i].ball = ts.ball
		ts.items[i].events = ts.events
	}
}

// Len is the number of tiles held, destroyed or not.
func (ts *Tiles) Len() int { return len(ts.items) }

// Alive is the number of tiles not yet destroyed.
func (ts *Tiles) Alive() int {
	n := 0
	for i := range ts.items {
		if !ts.items[i].Destroyed {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the held tiles in grid order.
func (ts *Tiles) Snapshot() []Tile {
	out := make([]Tile, len(ts.items))
	copy(out, ts.items)
	for i := range out {
		out[i].ball = nil
		out[i].events = nil
	}
	return out
}

// Update runs every live tile against the ball in grid order.
func (ts *Tiles) Update(deltaTime float64) {
	for i := range ts.items {
		if !ts.items[i].Destroyed {
			ts.items[i].Update(deltaTime)
		}
	}
}

// Compact removes destroyed tiles and returns how many were removed.
func (ts *Tiles) Compact() int {
	n := 0
	for _, t := range ts.items {
		if !t.Destroyed {
			ts.items[n] = t
			n++
		}
	}
	removed := len(ts.items) - n
	clear(ts.items[n:])
	ts.items = ts.items[:n]
	return removed
}

func (ts *Tiles) Draw(surface render.Surface) {
	for i := range ts.items {
		if !ts.items[i].Destroyed {
			ts.items[i].Draw(surface)
		}
	}
}
