// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Brick Breaker"

	PaddleWidth        = 150
	PaddleHeight       = 20
	PaddleMaxSpeed     = 7
	PaddleBottomMargin = 10 // gap between paddle and bottom edge

	BallSize   = 25
	BallStartX = 10
	BallStartY = 400
	BallSpeedX = 4
	BallSpeedY = -2

	TileWidth     = 80
	TileHeight    = 24
	TileRowOffset = 75

	StartingLives = 3

	// MaxDeltaTime caps the frame delta in milliseconds passed to Update.
	MaxDeltaTime = 60.0
	TicksPerSec  = 60

	OverlayFontSize = 30
	HUDFontSize     = 14
	HUDOffsetX      = 12
	HUDOffsetY      = 12
	LifeRadius      = 6.0
	LifeSpacing     = 4.0
)

const (
	MenuText     = "Press SPACEBAR to start"
	PausedText   = "Paused"
	GameOverText = "GAME OVER"
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	PaddleColor       = color.RGBA{0, 255, 255, 255} // #0ff
	BallColor         = color.RGBA{255, 255, 255, 255}
	TileColor         = color.RGBA{220, 60, 60, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	SolidOverlayColor = color.RGBA{0, 0, 0, 255}
	TextColor         = color.RGBA{255, 255, 255, 255}
	LifeColor         = color.RGBA{0, 255, 255, 255}
	LostLifeColor     = color.RGBA{40, 40, 40, 255}
)
