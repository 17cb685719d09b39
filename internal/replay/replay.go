// Package replay records the commands applied to a game and plays them back
// into a fresh one. The simulation is deterministic, so the same settings and
// the same frame-stamped commands always reproduce the same run.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"go-brick-breaker/internal/app"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/event"
	"go-brick-breaker/internal/input"
)

// Version is the replay format written by Encode.
const Version = 1

var (
	ErrVersion = errors.New("unsupported replay version")
	ErrCorrupt = errors.New("corrupt replay")
)

// Header describes the recorded run.
type Header struct {
	RunID    string          `msgpack:"run_id"`
	Version  int             `msgpack:"version"`
	Settings config.Settings `msgpack:"settings"`
	Frames   uint64          `msgpack:"frames"`
}

// Log is a complete replay: the settings the run started from and every
// command in the order it was applied.
type Log struct {
	Header   Header          `msgpack:"header"`
	Commands []input.Stamped `msgpack:"commands"`
}

// Validate checks that commands are known, in frame order and within the run.
func (l Log) Validate() error {
	if l.Header.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, l.Header.Version)
	}
	var last uint64
	for i, c := range l.Commands {
		switch {
		case !c.Command.Valid():
			return fmt.Errorf("%w: command %d is unknown (%d)", ErrCorrupt, i, c.Command)
		case c.Frame < last:
			return fmt.Errorf("%w: command %d at frame %d precedes frame %d", ErrCorrupt, i, c.Frame, last)
		case c.Frame > l.Header.Frames:
			return fmt.Errorf("%w: command %d at frame %d is past the end (%d)", ErrCorrupt, i, c.Frame, l.Header.Frames)
		}
		last = c.Frame
	}
	return nil
}

// Recorder collects CommandApplied events from a game.
type Recorder struct {
	log    Log
	events *event.Dispatcher
}

// Record starts recording g. Commands applied before the call are missed.
func Record(g *app.Game) *Recorder {
	r := &Recorder{log: Log{Header: Header{
		RunID:    g.RunID,
		Version:  Version,
		Settings: g.Settings(),
	}}, events: g.Events()}
	r.events.Subscribe(event.CommandApplied, r)
	return r
}

func (r *Recorder) OnEvent(e event.Event) {
	if stamped, ok := e.Data.(input.Stamped); ok {
		r.log.Commands = append(r.log.Commands, stamped)
	}
}

// Finish stops recording and returns the log of a run that simulated frames
// frames.
func (r *Recorder) Finish(frames uint64) Log {
	r.events.Unsubscribe(event.CommandApplied, r)
	l := r.log
	l.Header.Frames = frames
	l.Commands = append([]input.Stamped(nil), r.log.Commands...)
	return l
}

// Run replays l into a new game, calling Update with deltaTime once per
// recorded frame, and returns the game in its final state.
func Run(l Log, deltaTime float64) (*app.Game, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g, err := app.NewGame(l.Header.Settings)
	if err != nil {
		return nil, fmt.Errorf("cannot replay: %w", err)
	}
	g.RunID = l.Header.RunID

	next := 0
	apply := func(frame uint64) {
		for next < len(l.Commands) && l.Commands[next].Frame == frame {
			g.Apply(l.Commands[next].Command)
			next++
		}
	}
	for frame := uint64(0); frame < l.Header.Frames; frame++ {
		apply(frame)
		g.Update(deltaTime)
	}
	apply(l.Header.Frames)

	return g, nil
}

// Encode writes l as msgpack.
func Encode(w io.Writer, l Log) error {
	if err := msgpack.NewEncoder(w).Encode(&l); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a msgpack replay and validates it.
func Decode(r io.Reader) (Log, error) {
	var l Log
	if err := msgpack.NewDecoder(r).Decode(&l); err != nil {
		return Log{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := l.Validate(); err != nil {
		return Log{}, err
	}
	return l, nil
}

// Save writes l to path.
func Save(path string, l Log) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	if err := Encode(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a replay written by Save.
func Load(path string) (Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return Log{}, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
