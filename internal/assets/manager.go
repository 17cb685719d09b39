package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

type spriteKey struct {
	sprite        render.Sprite
	width, height int
}

// Manager loads, caches and releases sprite images and font faces.
// Sprites are rasterized once per size they are drawn at. A sprite that fails
// to load is cached as nil and not retried.
type Manager struct {
	font    *opentype.Font
	sprites map[spriteKey]*ebiten.Image
	faces   map[float64]font.Face
}

// NewManager parses the bundled font.
func NewManager() (*Manager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Manager{
		font:    tt,
		sprites: make(map[spriteKey]*ebiten.Image),
		faces:   make(map[float64]font.Face),
	}, nil
}

func (m *Manager) loadSingleSprite(key spriteKey) (*ebiten.Image, error) {
	data, err := Source(key.sprite)
	if err != nil {
		return nil, err
	}
	img, err := Rasterize(data, key.width, key.height)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", key.sprite, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Sprite returns s rasterized at width x height, loading it on first use.
func (m *Manager) Sprite(s render.Sprite, width, height int) (*ebiten.Image, bool) {
	key := spriteKey{sprite: s, width: width, height: height}
	if img, ok := m.sprites[key]; ok {
		return img, img != nil
	}
	img, err := m.loadSingleSprite(key)
	if err != nil {
		log.Printf("WARNING: failed to load sprite: %v", err)
		m.sprites[key] = nil
		return nil, false
	}
	m.sprites[key] = img
	return img, true
}

// LoadSprites rasterizes every sprite at the sizes s draws them.
func (m *Manager) LoadSprites(s config.Settings) {
	life := int(config.LifeRadius * 2)
	sizes := map[render.Sprite][2]int{
		render.SpriteBall: {int(s.Ball.Size), int(s.Ball.Size)},
		render.SpriteTile: {int(s.Tile.Width), int(s.Tile.Height)},
		render.SpriteLife: {life, life},
	}
	for _, sprite := range render.Sprites {
		size := sizes[sprite]
		if _, ok := m.Sprite(sprite, size[0], size[1]); ok {
			log.Printf("Loaded sprite %s at %dx%d", sprite, size[0], size[1])
		}
	}
}

// Face returns the bundled font at size, creating it on first use.
func (m *Manager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to create %v pt face: %v", size, err)
		return nil
	}
	m.faces[size] = face
	return face
}

// Cleanup releases every cached image and face.
func (m *Manager) Cleanup() {
	for key, img := range m.sprites {
		if img != nil {
			img.Deallocate()
		}
		delete(m.sprites, key)
	}
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
	log.Println("All sprites and faces unloaded.")
}
