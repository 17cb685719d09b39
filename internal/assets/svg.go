package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"go-brick-breaker/internal/render"
)

//go:embed sprites/*.svg
var spriteFS embed.FS

var spriteFiles = map[render.Sprite]string{
	render.SpriteBall: "sprites/ball.svg",
	render.SpriteTile: "sprites/tile.svg",
	render.SpriteLife: "sprites/life.svg",
}

// Source returns the embedded SVG document for s.
func Source(s render.Sprite) ([]byte, error) {
	name, ok := spriteFiles[s]
	if !ok {
		return nil, fmt.Errorf("no image for sprite %s", s)
	}
	return spriteFS.ReadFile(name)
}

// Rasterize renders an SVG document stretched to width x height.
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
