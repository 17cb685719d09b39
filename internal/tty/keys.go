package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-brick-breaker/internal/input"
)

// DefaultReleaseAfter outlasts the X11 default auto-repeat delay of 660ms, so
// a held arrow key keeps the paddle moving until the first repeat arrives. The
// cost is that a tapped arrow coasts this long before the paddle stops.
const DefaultReleaseAfter = 700 * time.Millisecond

// Keys maps terminal key events to commands. Terminals report presses and
// auto-repeats but never releases, so an arrow counts as released once it has
// not repeated for releaseAfter.
type Keys struct {
	releaseAfter time.Duration
	held         map[tcell.Key]time.Time
	hotkeys      map[rune]func()
}

// NewKeys creates a key mapper with the given release timeout.
func NewKeys(releaseAfter time.Duration) *Keys {
	return &Keys{
		releaseAfter: releaseAfter,
		held:         make(map[tcell.Key]time.Time),
		hotkeys:      make(map[rune]func()),
	}
}

// Bind runs action when r is typed. Bound runes never become commands.
func (k *Keys) Bind(r rune, action func()) {
	k.hotkeys[r] = action
}

var releases = map[tcell.Key]input.Command{
	tcell.KeyLeft:  input.ReleaseLeft,
	tcell.KeyRight: input.ReleaseRight,
}

// Translate returns the commands for one key event and whether the player
// asked to quit.
func (k *Keys) Translate(key tcell.Key, r rune, now time.Time) (cmds []input.Command, quit bool) {
	switch key {
	case tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		k.held[key] = now
		return []input.Command{input.MoveLeft}, false
	case tcell.KeyRight:
		k.held[key] = now
		return []input.Command{input.MoveRight}, false
	case tcell.KeyEscape:
		return []input.Command{input.TogglePause}, false
	case tcell.KeyRune:
		if action, ok := k.hotkeys[r]; ok {
			action()
			return nil, false
		}
		switch r {
		case ' ':
			return []input.Command{input.Start}, false
		case 'p':
			return []input.Command{input.TogglePause}, false
		case 'q':
			return nil, true
		}
	}
	return nil, false
}

// Expire releases arrows that have not repeated within the timeout.
func (k *Keys) Expire(now time.Time) []input.Command {
	var cmds []input.Command
	for _, key := range []tcell.Key{tcell.KeyLeft, tcell.KeyRight} {
		seen, ok := k.held[key]
		if !ok || now.Sub(seen) < k.releaseAfter {
			continue
		}
		delete(k.held, key)
		cmds = append(cmds, releases[key])
	}
	return cmds
}
