// Package display draws the game onto ebiten images.
package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-brick-breaker/internal/assets"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

// Screen draws onto an ebiten image. Call Begin with the frame's target
// before drawing.
type Screen struct {
	target *ebiten.Image
	assets *assets.Manager
}

// NewScreen creates a screen that takes sprites and faces from m.
func NewScreen(m *assets.Manager) *Screen {
	return &Screen{assets: m}
}

// Begin clears target to the background color and draws onto it until the
// next Begin.
func (s *Screen) Begin(target *ebiten.Image) {
	s.target = target
	s.target.Fill(config.BackgroundColor)
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawSprite draws s stretched to w x h. A sprite that fails to load is
// drawn as a flat rectangle in its fallback color.
func (s *Screen) DrawSprite(sprite render.Sprite, x, y, w, h float64) {
	img, ok := s.assets.Sprite(sprite, int(w), int(h))
	if !ok {
		s.FillRect(x, y, w, h, fallbackColor(sprite))
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.target.DrawImage(img, op)
}

func (s *Screen) DrawText(str string, x, y float64, f render.Font, align render.Align, c color.Color) {
	face := s.assets.Face(f.Size)
	if face == nil {
		return
	}
	bounds := text.BoundString(face, str)
	width := float64(bounds.Max.X - bounds.Min.X)
	text.Draw(s.target, str, face, int(alignedX(x, width, align)), int(y), c)
}

// alignedX returns the left edge of text of the given width anchored at x.
func alignedX(x, width float64, align render.Align) float64 {
	switch align {
	case render.AlignCenter:
		return x - width/2
	case render.AlignRight:
		return x - width
	}
	return x
}

func fallbackColor(sprite render.Sprite) color.RGBA {
	switch sprite {
	case render.SpriteBall:
		return config.BallColor
	case render.SpriteTile:
		return config.TileColor
	case render.SpriteLife:
		return config.LifeColor
	}
	return config.TextColor
}
