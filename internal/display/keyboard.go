// internal/display/keyboard.go
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-brick-breaker/internal/input"
)

// KeyBinding maps a key to the commands sent on press and on release.
type KeyBinding struct {
	Key       ebiten.Key
	Press     input.Command
	Release   input.Command
	OnRelease bool
}

// DefaultBindings: arrows steer, Escape pauses, Space starts.
var DefaultBindings = []KeyBinding{
	{Key: ebiten.KeyArrowLeft, Press: input.MoveLeft, Release: input.ReleaseLeft, OnRelease: true},
	{Key: ebiten.KeyArrowRight, Press: input.MoveRight, Release: input.ReleaseRight, OnRelease: true},
	{Key: ebiten.KeyEscape, Press: input.TogglePause},
	{Key: ebiten.KeySpace, Press: input.Start},
}

// Hotkey runs an action outside the game, such as muting sound. Hotkeys never
// reach the game as commands, so replays do not see them.
type Hotkey struct {
	Key    ebiten.Key
	Action func()
}

// Keyboard turns ebiten key transitions into commands.
type Keyboard struct {
	bindings []KeyBinding
	hotkeys  []Hotkey
	pressed  func(ebiten.Key) bool
	released func(ebiten.Key) bool
	buf      []input.Command
}

// NewKeyboard reads key state from inpututil.
func NewKeyboard(bindings []KeyBinding) *Keyboard {
	return &Keyboard{
		bindings: bindings,
		pressed:  inpututil.IsKeyJustPressed,
		released: inpututil.IsKeyJustReleased,
	}
}

// Bind runs action whenever key is pressed.
func (k *Keyboard) Bind(key ebiten.Key, action func()) {
	k.hotkeys = append(k.hotkeys, Hotkey{Key: key, Action: action})
}

// Poll runs due hotkeys, then returns the commands for this tick's key
// transitions in binding order. The slice is reused by the next call.
func (k *Keyboard) Poll() []input.Command {
	for _, h := range k.hotkeys {
		if k.pressed(h.Key) {
			h.Action()
		}
	}
	k.buf = k.buf[:0]
	for _, b := range k.bindings {
		if k.pressed(b.Key) {
			k.buf = append(k.buf, b.Press)
		}
		if b.OnRelease && k.released(b.Key) {
			k.buf = append(k.buf, b.Release)
		}
	}
	return k.buf
}

// Dispatch polls and applies every command to h.
func (k *Keyboard) Dispatch(h input.Handler) {
	for _, cmd := range k.Poll() {
		h.Apply(cmd)
	}
}
