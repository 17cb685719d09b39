// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-brick-breaker/internal/app"
	"go-brick-breaker/internal/audio"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/replay"
	"go-brick-breaker/internal/tty"
)

type options struct {
	configPath   string
	recordPath   string
	releaseAfter time.Duration
	mute         bool
}

// run owns every deferred cleanup, so main may exit only after it returns.
func run(opts options) error {
	settings := config.Default()
	if opts.configPath != "" {
		s, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
	}

	game, err := app.NewGame(settings)
	if err != nil {
		return err
	}

	player := audio.NewPlayer()
	if !opts.mute {
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Cleanup()
	}
	player.Subscribe(game.Events())

	var recorder *replay.Recorder
	if opts.recordPath != "" {
		recorder = replay.Record(game)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Restore the terminal before printing a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "brick-breaker crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := tty.NewRunner(screen, game, settings, opts.releaseAfter)
	runner.BindKey('m', func() {
		log.Printf("Sound muted: %v", player.ToggleMute())
	})
	runErr := runner.Run(ctx)
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintln(os.Stderr, runErr)
	}

	if recorder != nil {
		if err := replay.Save(opts.recordPath, recorder.Finish(game.Frame())); err != nil {
			return fmt.Errorf("failed to save replay: %w", err)
		}
	}
	fmt.Printf("%s: level %d, %d lives left after %d frames\n", game.State(), game.Level(), game.Lives(), game.Frame())
	return nil
}

func main() {
	configPath := flag.String("config", "", "TOML settings file; defaults are used when empty")
	releaseAfter := flag.Duration("release", tty.DefaultReleaseAfter, "Treat an arrow key as released after this long without a repeat")
	mute := flag.Bool("mute", false, "Disable sound effects")
	recordPath := flag.String("record", "", "Write a replay of the session to this file on exit")
	logPath := flag.String("log", "", "Append logs to this file; the terminal is busy drawing")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	err := run(options{
		configPath:   *configPath,
		recordPath:   *recordPath,
		releaseAfter: *releaseAfter,
		mute:         *mute,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Println(err)
		os.Exit(1)
	}
}
