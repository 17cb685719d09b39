package entity

import (
	"testing"

	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/render"
)

func tileAt(x, y float64) Tile {
	return NewTile(component.Position{X: x, Y: y}, config.TileWidth, config.TileHeight)
}

func TestTileHitDestroysAndFlipsBall(t *testing.T) {
	b, _, log := newTestBall(t)
	ts := NewTiles(b, b.events)
	ts.Reset([]Tile{tileAt(80, 75), tileAt(400, 75)})

	// Inside the first tile horizontally, touching it vertically.
	b.Position = component.Position{X: 100, Y: 90}
	ts.Update(16)

	if b.Velocity.Y != 2 {
		t.Errorf("vy = %v, want 2", b.Velocity.Y)
	}
	if ts.Alive() != 1 || ts.Len() != 2 {
		t.Errorf("alive=%d len=%d, want 1 and 2 before compaction", ts.Alive(), ts.Len())
	}
	if log.count(event.TileDestroyed) != 1 {
		t.Fatalf("TileDestroyed events: %v", log.types)
	}
	if pos := log.data[0].(component.Position); pos.X != 80 || pos.Y != 75 {
		t.Errorf("destroyed tile reported at %+v", pos)
	}

	if removed := ts.Compact(); removed != 1 {
		t.Errorf("Compact removed %d, want 1", removed)
	}
	if ts.Len() != 1 || ts.Snapshot()[0].Position.X != 400 {
		t.Errorf("remaining tiles = %+v", ts.Snapshot())
	}
}

func TestTileMissLeavesBallAlone(t *testing.T) {
	b, _, _ := newTestBall(t)
	ts := NewTiles(b, nil)
	ts.Reset([]Tile{tileAt(80, 75)})

	// Overlaps the tile's right edge only partly.
	b.Position = component.Position{X: 150, Y: 90}
	ts.Update(16)
	if b.Velocity.Y != -2 || ts.Alive() != 1 {
		t.Errorf("partial overlap counted as a hit: vy=%v alive=%d", b.Velocity.Y, ts.Alive())
	}
}

func TestTwoTilesInOneFrameFlipTwice(t *testing.T) {
	b, _, _ := newTestBall(t)
	ts := NewTiles(b, nil)
	// Stacked rows: the ball spans the boundary between them.
	ts.Reset([]Tile{tileAt(80, 75), tileAt(80, 99)})

	b.Position = component.Position{X: 100, Y: 90}
	ts.Update(16)

	if b.Velocity.Y != -2 {
		t.Errorf("vy = %v, want -2 after two flips", b.Velocity.Y)
	}
	if ts.Alive() != 0 {
		t.Errorf("alive = %d, want 0", ts.Alive())
	}
	ts.Compact()
	if ts.Len() != 0 {
		t.Errorf("len after compaction = %d", ts.Len())
	}
}

func TestTilesResetDiscardsOldSet(t *testing.T) {
	b, _, _ := newTestBall(t)
	ts := NewTiles(b, nil)
	ts.Reset([]Tile{tileAt(0, 75), tileAt(80, 75), tileAt(160, 75)})
	src := []Tile{tileAt(0, 99)}
	ts.Reset(src)

	if ts.Len() != 1 {
		t.Fatalf("len = %d, want 1", ts.Len())
	}
	src[0].Destroyed = true
	if ts.Alive() != 1 {
		t.Error("Reset kept a reference to the caller's slice")
	}
}

func TestTilesDrawSkipsDestroyed(t *testing.T) {
	b, _, _ := newTestBall(t)
	ts := NewTiles(b, nil)
	ts.Reset([]Tile{tileAt(0, 75), tileAt(80, 75)})
	b.Position = component.Position{X: 10, Y: 90}
	ts.Update(16)

	var rec render.Recorder
	ts.Draw(&rec)
	if rec.Count(render.OpSprite) != 1 {
		t.Fatalf("drew %d tiles, want 1", rec.Count(render.OpSprite))
	}
	c := rec.Calls[0]
	if c.Sprite != render.SpriteTile || c.X != 80 || c.Y != 75 || c.W != 80 || c.H != 24 {
		t.Errorf("tile drawn as %+v", c)
	}
}

func TestUnboundTileIsInert(t *testing.T) {
	tile := tileAt(0, 0)
	tile.Update(16)
	if tile.Destroyed {
		t.Error("tile without a ball was destroyed")
	}
}
