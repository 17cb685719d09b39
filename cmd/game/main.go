// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-brick-breaker/internal/app"
	"go-brick-breaker/internal/assets"
	"go-brick-breaker/internal/audio"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/display"
	"go-brick-breaker/internal/replay"
	"go-brick-breaker/internal/ui"
)

type AppGame struct {
	game           *app.Game
	keyboard       *display.Keyboard
	screen         *display.Screen
	hud            *ui.HUD
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := app.FrameDelta(now.Sub(a.lastUpdateTime))
	a.lastUpdateTime = now

	a.keyboard.Dispatch(a.game)
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.screen.Begin(screen)
	a.game.Draw(a.screen)
	a.hud.Draw(a.screen, a.game)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := a.game.Settings()
	return int(s.Width), int(s.Height)
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	log.Printf("Loaded settings from %s", path)
	return s, nil
}

type options struct {
	configPath string
	recordPath string
	mute       bool
}

// run owns every deferred cleanup, so main may exit only after it returns.
func run(opts options) error {
	settings, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	game, err := app.NewGame(settings)
	if err != nil {
		return err
	}

	manager, err := assets.NewManager()
	if err != nil {
		return err
	}
	manager.LoadSprites(settings)
	defer manager.Cleanup()

	player := audio.NewPlayer()
	if !opts.mute {
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Cleanup()
	}
	player.Subscribe(game.Events())

	var recorder *replay.Recorder
	if opts.recordPath != "" {
		recorder = replay.Record(game)
	}

	keyboard := display.NewKeyboard(display.DefaultBindings)
	keyboard.Bind(ebiten.KeyM, func() {
		log.Printf("Sound muted: %v", player.ToggleMute())
	})

	a := &AppGame{
		game:           game,
		keyboard:       keyboard,
		screen:         display.NewScreen(manager),
		hud:            ui.NewHUD(settings),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(settings.Width), int(settings.Height))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(a); err != nil {
		return err
	}

	if recorder != nil {
		if err := replay.Save(opts.recordPath, recorder.Finish(game.Frame())); err != nil {
			return fmt.Errorf("failed to save replay: %w", err)
		}
		log.Printf("Replay of %d frames written to %s", game.Frame(), opts.recordPath)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "TOML settings file; defaults are used when empty")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address; empty disables it")
	mute := flag.Bool("mute", false, "Disable sound effects")
	recordPath := flag.String("record", "", "Write a replay of the session to this file on exit")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if err := run(options{configPath: *configPath, recordPath: *recordPath, mute: *mute}); err != nil {
		log.Fatal(err)
	}
}
