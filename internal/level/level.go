// internal/level/level.go
package level

import (
	"go-brick-breaker/internal/component"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/entity"
)

// Grid is a level template: rows of 0/1 flags, 1 meaning a tile. Templates
// are never mutated.
type Grid [][]int

// Layout maps grid cells to field coordinates.
type Layout struct {
	TileWidth  float64
	TileHeight float64
	RowOffset  float64
}

// LayoutFrom reads the tile geometry out of s.
func LayoutFrom(s config.Settings) Layout {
	return Layout{
		TileWidth:  s.Tile.Width,
		TileHeight: s.Tile.Height,
		RowOffset:  s.Tile.RowOffset,
	}
}

// Templates returns the level grids configured in s.
func Templates(s config.Settings) []Grid {
	out := make([]Grid, len(s.Levels))
	for i, lvl := range s.Levels {
		out[i] = Grid(lvl.Rows)
	}
	return out
}

// Build creates one tile for every cell equal to 1, row by row.
func Build(grid Grid, layout Layout) []entity.Tile {
	tiles := make([]entity.Tile, 0, grid.Count())
	for r, row := range grid {
		for c, cell := range row {
			if cell != 1 {
				continue
			}
			pos := component.Position{
				X: float64(c) * layout.TileWidth,
				Y: layout.RowOffset + float64(r)*layout.TileHeight,
			}
			tiles = append(tiles, entity.NewTile(pos, layout.TileWidth, layout.TileHeight))
		}
	}
	return tiles
}

// Count is the number of tiles the grid produces.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == 1 {
				n++
			}
		}
	}
	return n
}
