// Package tty plays the game in a terminal. The field is scaled onto a grid
// of character cells; translucent fills are blended into the cells below.
package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
	pkgRender "go-brick-breaker/pkg/render"
	"go-brick-breaker/pkg/utils"
)

const (
	ballRune = '●'
	tileRune = '▒'
	lifeRune = '♥'
)

// Cell is one character of the canvas.
type Cell struct {
	Rune   rune
	Fg, Bg color.RGBA
}

// Canvas is a render.Surface backed by a grid of cells.
type Canvas struct {
	cols, rows    int
	width, height float64
	cells         []Cell
}

// NewCanvas maps a width x height field onto cols x rows cells.
func NewCanvas(cols, rows int, width, height float64) *Canvas {
	c := &Canvas{width: width, height: height}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Clear fills every cell with the background.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: config.TextColor, Bg: config.BackgroundColor}
	}
}

// At returns the cell at col, row. Out-of-range cells are blank.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return Cell{Rune: ' '}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) cell(col, row int) *Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// span returns the half-open range of cells covered by [pos, pos+size).
// Anything visible covers at least one cell.
func span(pos, size, logical float64, cells int) (lo, hi int) {
	lo = int(math.Floor(utils.Scale(pos, logical, float64(cells))))
	hi = int(math.Ceil(utils.Scale(pos+size, logical, float64(cells))))
	if hi <= lo {
		hi = lo + 1
	}
	return utils.ClampInt(lo, 0, cells), utils.ClampInt(hi, 0, cells)
}

func (c *Canvas) each(x, y, w, h float64, fn func(*Cell)) {
	c0, c1 := span(x, w, c.width, c.cols)
	r0, r1 := span(y, h, c.height, c.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			fn(c.cell(col, row))
		}
	}
}

// FillRect paints the cells under the rectangle. Opaque colors replace the
// cells; translucent ones tint what is already there.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	fill := pkgRender.ToRGBA(clr)
	c.each(x, y, w, h, func(cell *Cell) {
		if fill.A == 255 {
			*cell = Cell{Rune: ' ', Fg: config.TextColor, Bg: fill}
			return
		}
		cell.Bg = pkgRender.Blend(cell.Bg, fill)
		cell.Fg = pkgRender.Blend(cell.Fg, fill)
	})
}

func (c *Canvas) DrawSprite(s render.Sprite, x, y, w, h float64) {
	switch s {
	case render.SpriteBall:
		col, _ := span(x+w/2, 0, c.width, c.cols)
		row, _ := span(y+h/2, 0, c.height, c.rows)
		if cell := c.cell(col, row); cell != nil {
			cell.Rune, cell.Fg = ballRune, config.BallColor
		}
	case render.SpriteTile:
		c.each(x, y, w, h, func(cell *Cell) {
			*cell = Cell{Rune: tileRune, Fg: config.TileColor, Bg: pkgRender.DarkenColor(config.TileColor)}
		})
	case render.SpriteLife:
		col, _ := span(x, w, c.width, c.cols)
		row, _ := span(y, h, c.height, c.rows)
		if cell := c.cell(col, row); cell != nil {
			cell.Rune, cell.Fg = lifeRune, config.LifeColor
		}
	}
}

// DrawText writes one rune per cell on the row holding y. Font size is
// ignored.
func (c *Canvas) DrawText(text string, x, y float64, f render.Font, align render.Align, clr color.Color) {
	runes := []rune(text)
	col, _ := span(x, 0, c.width, c.cols)
	row, _ := span(y, 0, c.height, c.rows)
	switch align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	fg := pkgRender.ToRGBA(clr)
	for i, r := range runes {
		if cell := c.cell(col+i, row); cell != nil {
			cell.Rune, cell.Fg = r, fg
		}
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush copies the canvas to screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Foreground(toTcell(cell.Fg)).Background(toTcell(cell.Bg))
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
