package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/state"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine blip. Volume is relative, in halvings: -1 is half
// amplitude.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// toneFor picks the blip for a game event.
func toneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.TileDestroyed:
		return Tone{Freq: 880, Duration: 50 * time.Millisecond, Volume: -1}, true
	case event.PaddleHit:
		return Tone{Freq: 440, Duration: 60 * time.Millisecond, Volume: -1}, true
	case event.WallBounce:
		return Tone{Freq: 660, Duration: 30 * time.Millisecond, Volume: -2}, true
	case event.LifeLost:
		return Tone{Freq: 220, Duration: 250 * time.Millisecond, Volume: -1}, true
	case event.LevelStarted:
		return Tone{Freq: 523.25, Duration: 150 * time.Millisecond, Volume: -1}, true
	case event.StateChanged:
		if change, ok := e.Data.(state.Change); ok && change.To == state.GameOver {
			return Tone{Freq: 110, Duration: 600 * time.Millisecond, Volume: 0}, true
		}
	}
	return Tone{}, false
}

// stream renders t as a finite streamer.
func stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("tone %v Hz: %w", t.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   t.Volume,
	}, nil
}

// Player turns game events into sound effects. Until Initialize succeeds it
// silently ignores every event.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player with an empty mixer.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Subscribe registers the player for every event it has a sound for.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p,
		event.TileDestroyed,
		event.PaddleHit,
		event.WallBounce,
		event.LifeLost,
		event.LevelStarted,
		event.StateChanged,
	)
}

func (p *Player) OnEvent(e event.Event) {
	tone, ok := toneFor(e)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}

	s, err := stream(tone)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted turns sound effects off or back on.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether sound effects are off.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips the mute switch and returns the new setting.
func (p *Player) ToggleMute() bool {
	muted := !p.Muted()
	p.SetMuted(muted)
	return muted
}

// Cleanup drops queued sounds and stops reacting to events.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
