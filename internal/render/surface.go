// internal/render/surface.go
package render

import "image/color"

// Sprite identifies an image the surface knows how to draw.
type Sprite int

const (
	SpriteBall Sprite = iota
	SpriteTile
	SpriteLife
)

// Sprites lists every Sprite, for preloading.
var Sprites = []Sprite{SpriteBall, SpriteTile, SpriteLife}

func (s Sprite) String() string {
	switch s {
	case SpriteBall:
		return "ball"
	case SpriteTile:
		return "tile"
	case SpriteLife:
		return "life"
	}
	return "unknown"
}

// Align is the horizontal anchor of drawn text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects a text size in logical pixels.
type Font struct {
	Size float64
}

// Surface is the 2D drawing target handed to Draw every frame.
// Coordinates are logical game units; y is the text baseline for DrawText.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	DrawSprite(s Sprite, x, y, w, h float64)
	DrawText(text string, x, y float64, f Font, align Align, c color.Color)
}
