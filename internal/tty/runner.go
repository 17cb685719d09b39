package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-brick-breaker/internal/app"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/interfaces"
	"go-brick-breaker/internal/ui"
)

// Runner drives a game from a tcell screen at a fixed tick.
type Runner struct {
	screen tcell.Screen
	game   interfaces.Controller
	hud    *ui.HUD
	canvas *Canvas
	keys   *Keys
	tick   time.Duration
}

// NewRunner prepares a runner; the screen must already be initialised.
func NewRunner(screen tcell.Screen, game interfaces.Controller, s config.Settings, releaseAfter time.Duration) *Runner {
	cols, rows := screen.Size()
	return &Runner{
		screen: screen,
		game:   game,
		hud:    ui.NewHUD(s),
		canvas: NewCanvas(cols, rows, s.Width, s.Height),
		keys:   NewKeys(releaseAfter),
		tick:   time.Second / config.TicksPerSec,
	}
}

// BindKey runs action when r is typed.
func (r *Runner) BindKey(key rune, action func()) {
	r.keys.Bind(key, action)
}

// handle applies one terminal event and reports whether to keep running.
func (r *Runner) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmds, quit := r.keys.Translate(ev.Key(), ev.Rune(), now)
		if quit {
			return false
		}
		for _, cmd := range cmds {
			r.game.Apply(cmd)
		}
	case *tcell.EventResize:
		cols, rows := r.screen.Size()
		r.canvas.Resize(cols, rows)
		r.screen.Sync()
	}
	return true
}

// step expires held keys, advances the game and redraws.
func (r *Runner) step(now time.Time, elapsed time.Duration) {
	for _, cmd := range r.keys.Expire(now) {
		r.game.Apply(cmd)
	}
	r.game.Update(app.FrameDelta(elapsed))

	r.canvas.Clear()
	r.game.Draw(r.canvas)
	r.hud.Draw(r.canvas, r.game)
	r.canvas.Flush(r.screen)
}

// Run plays until the player quits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !r.handle(ev, time.Now()) {
				log.Println("tty: quit requested")
				return nil
			}
		case now := <-ticker.C:
			r.step(now, now.Sub(last))
			last = now
		}
	}
}
