// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/entity"
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/input"
	"go-brick-breaker/internal/interfaces"
	"go-brick-breaker/internal/level"
	"go-brick-breaker/internal/render"
	"go-brick-breaker/internal/state"
)

var _ interfaces.Controller = (*Game)(nil)

// Game owns every entity, the lives counter, level progression and the
// game-flow state. Only Update mutates the simulation; commands only set
// paddle speed or switch state.
type Game struct {
	RunID string

	settings     config.Settings
	events       *event.Dispatcher
	stateMachine *state.StateMachine

	paddle  *entity.Paddle
	ball    *entity.Ball
	tiles   *entity.Tiles
	objects []entity.Entity // what Update and Draw walk; empty until the first Start

	levels       []level.Grid
	layout       level.Layout
	currentLevel int
	lives        int
	frame        uint64
}

// NewGame creates a game in the Menu state.
func NewGame(settings config.Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create game: %w", err)
	}

	events := event.NewDispatcher()
	paddle := entity.NewPaddle(settings)
	ball := entity.NewBall(settings, paddle, events)

	g := &Game{
		RunID:        uuid.NewString(),
		settings:     settings,
		events:       events,
		stateMachine: state.NewStateMachine(events),
		paddle:       paddle,
		ball:         ball,
		tiles:        entity.NewTiles(ball, events),
		levels:       level.Templates(settings),
		layout:       level.LayoutFrom(settings),
		lives:        settings.Lives,
	}

	listener := &GameEventListener{game: g}
	events.Subscribe(event.LifeLost, listener)

	log.Printf("game %s: %d levels, %d lives", g.RunID, len(g.levels), g.lives)
	return g, nil
}

// GameEventListener applies simulation events that change game-level counters.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LifeLost:
		if l.game.lives > 0 {
			l.game.lives--
		}
	}
}

// Start builds the current level and resumes play. It only acts from Menu
// or NewLevel.
func (g *Game) Start() {
	if !g.stateMachine.Is(state.Menu, state.NewLevel) {
		return
	}

	g.tiles.Reset(level.Build(g.template(g.currentLevel), g.layout))
	g.ball.Reset()
	g.objects = []entity.Entity{g.paddle, g.ball, g.tiles}
	g.stateMachine.SetState(state.Running)

	log.Printf("game %s: level %d started with %d tiles", g.RunID, g.currentLevel, g.tiles.Len())
	g.events.Emit(event.LevelStarted, g.currentLevel)
}

// template wraps around once every configured level has been cleared.
func (g *Game) template(index int) level.Grid {
	return g.levels[index%len(g.levels)]
}

// TogglePause switches between Running and Paused and ignores other states.
func (g *Game) TogglePause() {
	switch g.stateMachine.Current() {
	case state.Running:
		g.stateMachine.SetState(state.Paused)
	case state.Paused:
		g.stateMachine.SetState(state.Running)
	}
}

func (g *Game) MoveLeft()  { g.paddle.MoveLeft() }
func (g *Game) MoveRight() { g.paddle.MoveRight() }
func (g *Game) Stop()      { g.paddle.Stop() }

// Apply executes cmd immediately and announces it as CommandApplied.
func (g *Game) Apply(cmd input.Command) {
	g.events.Emit(event.CommandApplied, input.Stamped{Frame: g.frame, Command: cmd})

	switch cmd {
	case input.MoveLeft:
		g.MoveLeft()
	case input.MoveRight:
		g.MoveRight()
	case input.Stop:
		g.Stop()
	case input.ReleaseLeft:
		if g.paddle.Speed() < 0 {
			g.Stop()
		}
	case input.ReleaseRight:
		if g.paddle.Speed() > 0 {
			g.Stop()
		}
	case input.TogglePause:
		g.TogglePause()
	case input.Start:
		g.Start()
	}
}

// Update advances one frame. deltaTime is in milliseconds and is passed to
// the entities, which move a fixed step per frame regardless.
func (g *Game) Update(deltaTime float64) {
	g.frame++

	if g.lives == 0 && !g.stateMachine.Is(state.GameOver) {
		g.stateMachine.SetState(state.GameOver)
		log.Printf("game %s: game over on level %d after %d frames", g.RunID, g.currentLevel, g.frame)
	}
	if !g.stateMachine.Current().Simulates() {
		return
	}

	if g.tiles.Len() == 0 {
		g.currentLevel++
		g.stateMachine.SetState(state.NewLevel)
		g.Start()
	}

	for _, obj := range g.objects {
		obj.Update(deltaTime)
	}
	g.tiles.Compact()
}

// Draw renders the live entities, then the overlay for the current state.
func (g *Game) Draw(surface render.Surface) {
	for _, obj := range g.objects {
		obj.Draw(surface)
	}

	if overlay, ok := g.stateMachine.Current().Overlay(); ok {
		w, h := g.settings.Width, g.settings.Height
		surface.FillRect(0, 0, w, h, overlay.Fill)
		surface.DrawText(overlay.Text, w/2, h/2, render.Font{Size: config.OverlayFontSize}, render.AlignCenter, config.TextColor)
	}
}

func (g *Game) State() state.State        { return g.stateMachine.Current() }
func (g *Game) Lives() int                { return g.lives }
func (g *Game) Level() int                { return g.currentLevel }
func (g *Game) Frame() uint64             { return g.frame }
func (g *Game) Settings() config.Settings { return g.settings }
func (g *Game) Events() *event.Dispatcher { return g.events }
func (g *Game) Paddle() *entity.Paddle    { return g.paddle }
func (g *Game) Ball() *entity.Ball        { return g.ball }
func (g *Game) Tiles() *entity.Tiles      { return g.tiles }
