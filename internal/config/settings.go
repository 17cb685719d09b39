package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"go-brick-breaker/pkg/render"
)

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrEmptyGrid       = errors.New("level grid is empty")
	ErrRaggedGrid      = errors.New("level grid rows differ in length")
	ErrBadCell         = errors.New("level grid cell must be 0 or 1")
)

// PaddleSettings describes the player paddle.
type PaddleSettings struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	MaxSpeed     float64 `toml:"max_speed"`
	BottomMargin float64 `toml:"bottom_margin"`
	Color        string  `toml:"color"`
}

// BallSettings describes the ball and its deterministic reset point.
type BallSettings struct {
	Size   float64 `toml:"size"`
	StartX float64 `toml:"start_x"`
	StartY float64 `toml:"start_y"`
	SpeedX float64 `toml:"speed_x"`
	SpeedY float64 `toml:"speed_y"`
}

// TileSettings describes tile dimensions and where the grid starts.
type TileSettings struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	RowOffset float64 `toml:"row_offset"`
}

// LevelSettings is one level grid, written as a [[levels]] table.
type LevelSettings struct {
	Rows [][]int `toml:"rows"`
}

// Settings is the full set of tunables for one game.
type Settings struct {
	Width  float64         `toml:"width"`
	Height float64         `toml:"height"`
	Lives  int             `toml:"lives"`
	Paddle PaddleSettings  `toml:"paddle"`
	Ball   BallSettings    `toml:"ball"`
	Tile   TileSettings    `toml:"tile"`
	Levels []LevelSettings `toml:"levels"`
}

// Default returns the stock 800x600 game.
func Default() Settings {
	return Settings{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		Lives:  StartingLives,
		Paddle: PaddleSettings{
			Width:        PaddleWidth,
			Height:       PaddleHeight,
			MaxSpeed:     PaddleMaxSpeed,
			BottomMargin: PaddleBottomMargin,
			Color:        "#0ff",
		},
		Ball: BallSettings{
			Size:   BallSize,
			StartX: BallStartX,
			StartY: BallStartY,
			SpeedX: BallSpeedX,
			SpeedY: BallSpeedY,
		},
		Tile: TileSettings{
			Width:     TileWidth,
			Height:    TileHeight,
			RowOffset: TileRowOffset,
		},
		Levels: LevelTables(DefaultLevels()),
	}
}

// Load reads a TOML file on top of Default and validates the result.
// Keys missing from the file keep their default values. Levels listed in the
// file replace the built-in ones as a whole.
func Load(path string) (Settings, error) {
	s := withoutLevels()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return finish(s, md)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Settings, error) {
	s := withoutLevels()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return finish(s, md)
}

// withoutLevels keeps the decoder from merging file levels into the defaults.
func withoutLevels() Settings {
	s := Default()
	s.Levels = nil
	return s
}

func finish(s Settings, md toml.MetaData) (Settings, error) {
	if !md.IsDefined("levels") {
		s.Levels = LevelTables(DefaultLevels())
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidSettings, undecoded)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings describe a playable field.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: field must have positive size, got %vx%v", ErrInvalidSettings, s.Width, s.Height)
	case s.Paddle.Width <= 0 || s.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidSettings)
	case s.Paddle.Width > s.Width:
		return fmt.Errorf("%w: paddle width %v exceeds field width %v", ErrInvalidSettings, s.Paddle.Width, s.Width)
	case s.Paddle.BottomMargin < 0 || s.Paddle.Height+s.Paddle.BottomMargin > s.Height:
		return fmt.Errorf("%w: paddle height %v with margin %v does not fit field height %v",
			ErrInvalidSettings, s.Paddle.Height, s.Paddle.BottomMargin, s.Height)
	case s.Paddle.MaxSpeed <= 0:
		return fmt.Errorf("%w: paddle max_speed must be positive", ErrInvalidSettings)
	case s.Ball.Size <= 0 || s.Ball.Size > s.Width || s.Ball.Size > s.Height:
		return fmt.Errorf("%w: ball size %v does not fit the field", ErrInvalidSettings, s.Ball.Size)
	case s.Ball.StartX < 0 || s.Ball.StartX > s.Width-s.Ball.Size ||
		s.Ball.StartY < 0 || s.Ball.StartY > s.Height-s.Ball.Size:
		return fmt.Errorf("%w: ball start (%v, %v) is outside the field", ErrInvalidSettings, s.Ball.StartX, s.Ball.StartY)
	case s.Tile.Width <= 0 || s.Tile.Height <= 0:
		return fmt.Errorf("%w: tile must have positive size", ErrInvalidSettings)
	case s.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidSettings, s.Lives)
	case len(s.Levels) == 0:
		return fmt.Errorf("%w: at least one level is required", ErrInvalidSettings)
	}
	if _, err := render.ParseHex(s.Paddle.Color); err != nil {
		return fmt.Errorf("%w: paddle color: %w", ErrInvalidSettings, err)
	}
	for i, lvl := range s.Levels {
		if err := ValidateGrid(lvl.Rows); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}

// PaddleRGBA returns the parsed paddle color, falling back to PaddleColor.
func (s Settings) PaddleRGBA() color.RGBA {
	c, err := render.ParseHex(s.Paddle.Color)
	if err != nil {
		return PaddleColor
	}
	return c
}

// LevelTables wraps plain grids as level tables.
func LevelTables(grids [][][]int) []LevelSettings {
	out := make([]LevelSettings, len(grids))
	for i, g := range grids {
		out[i] = LevelSettings{Rows: g}
	}
	return out
}

// ValidateGrid checks that a level grid is a non-empty rectangle of 0/1 cells.
// An all-zero grid is valid.
func ValidateGrid(grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		for c, cell := range row {
			if cell != 0 && cell != 1 {
				return fmt.Errorf("%w: (%d,%d) = %d", ErrBadCell, r, c, cell)
			}
		}
	}
	return nil
}
