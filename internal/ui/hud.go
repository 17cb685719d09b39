package ui

import (
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/interfaces"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/state"
)

// HUD is the lives and level readout drawn on top of a running game.
type HUD struct {
	Lives    *LivesIndicator
	Level    *LevelIndicator
	maxLives int
}

// NewHUD lays the HUD out for the field described by s.
func NewHUD(s config.Settings) *HUD {
	return &HUD{
		Lives:    NewLivesIndicator(config.HUDOffsetX, config.HUDOffsetY),
		Level:    NewLevelIndicator(s.Width-config.HUDOffsetX, config.HUDOffsetY+config.HUDFontSize, config.HUDFontSize),
		maxLives: s.Lives,
	}
}

// Draw draws the HUD unless a solid overlay hides the field.
func (h *HUD) Draw(surface render.Surface, game interfaces.Controller) {
	switch game.State() {
	case state.Menu, state.GameOver:
		return
	}
	h.Lives.Draw(surface, game.Lives(), h.maxLives)
	h.Level.Draw(surface, game.Level())
}
