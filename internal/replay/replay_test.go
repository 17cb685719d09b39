package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"go-brick-breaker/internal/app"
	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/input"
	"go-brick-breaker/internal/state"
)

const frameMs = 1000.0 / 60

// play drives a game through a scripted session: start, steer both ways,
// pause for a while, then run until the script ends.
func play(t *testing.T) (*app.Game, Log) {
	t.Helper()
	g, err := app.NewGame(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec := Record(g)

	script := map[uint64][]input.Command{
		0:   {input.Start},
		10:  {input.MoveLeft},
		40:  {input.MoveRight},
		41:  {input.ReleaseLeft},
		90:  {input.ReleaseRight},
		120: {input.TogglePause},
		150: {input.TogglePause, input.MoveRight},
		300: {input.Stop},
	}
	for frame := uint64(0); frame < 600; frame++ {
		for _, cmd := range script[frame] {
			g.Apply(cmd)
		}
		g.Update(frameMs)
	}
	return g, rec.Finish(g.Frame())
}

func TestFinishStopsRecording(t *testing.T) {
	g, err := app.NewGame(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec := Record(g)
	g.Apply(input.Start)
	first := rec.Finish(g.Frame())

	g.Apply(input.MoveLeft)
	second := rec.Finish(g.Frame())
	if len(first.Commands) != 1 || len(second.Commands) != 1 {
		t.Errorf("recorded %d then %d commands, want 1 both times", len(first.Commands), len(second.Commands))
	}
}

func TestReplayReproducesRun(t *testing.T) {
	g, log := play(t)
	if len(log.Commands) != 9 {
		t.Fatalf("recorded %d commands, want 9", len(log.Commands))
	}

	replayed, err := Run(log, frameMs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := replayed.Snapshot(), g.Snapshot(); got != want {
		t.Errorf("replay diverged:\n got %v\nwant %v", got, want)
	}
	if replayed.RunID != g.RunID {
		t.Errorf("RunID = %q, want %q", replayed.RunID, g.RunID)
	}
}

func TestEncodeDecodeThenRun(t *testing.T) {
	g, log := play(t)

	var buf bytes.Buffer
	if err := Encode(&buf, log); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Header.Frames != 600 || len(decoded.Commands) != len(log.Commands) {
		t.Fatalf("decoded header %+v with %d commands", decoded.Header, len(decoded.Commands))
	}

	replayed, err := Run(decoded, frameMs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := replayed.Snapshot(), g.Snapshot(); got != want {
		t.Errorf("replay diverged:\n got %v\nwant %v", got, want)
	}
}

func TestSaveLoad(t *testing.T) {
	_, log := play(t)
	path := filepath.Join(t.TempDir(), "run.replay")

	if err := Save(path, log); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Header.RunID != log.Header.RunID || loaded.Header.Settings.Lives != 3 {
		t.Errorf("loaded header = %+v", loaded.Header)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestCommandsAfterLastFrame(t *testing.T) {
	g, err := app.NewGame(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec := Record(g)
	g.Apply(input.Start)
	g.Update(frameMs)
	g.Apply(input.TogglePause)

	replayed, err := Run(rec.Finish(g.Frame()), frameMs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if replayed.State() != state.Paused {
		t.Errorf("state = %v, want Paused", replayed.State())
	}
}

func TestValidate(t *testing.T) {
	base := Header{Version: Version, Settings: config.Default(), Frames: 10}
	tests := []struct {
		name string
		log  Log
		want error
	}{
		{"ok", Log{Header: base, Commands: []input.Stamped{{Frame: 0, Command: input.Start}, {Frame: 10, Command: input.Stop}}}, nil},
		{"version", Log{Header: Header{Version: 7}}, ErrVersion},
		{"unknown command", Log{Header: base, Commands: []input.Stamped{{Frame: 1, Command: 99}}}, ErrCorrupt},
		{"out of order", Log{Header: base, Commands: []input.Stamped{{Frame: 5, Command: input.Start}, {Frame: 2, Command: input.Stop}}}, ErrCorrupt},
		{"past end", Log{Header: base, Commands: []input.Stamped{{Frame: 11, Command: input.Start}}}, ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.log.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1, 0x00})); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decode = %v, want ErrCorrupt", err)
	}
}
