// internal/state/state.go
package state

import (
	"image/color"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/event"
)

// State is the game-flow mode. The zero value is Menu.
type State int

const (
	Menu State = iota
	Running
	Paused
	GameOver
	NewLevel // transient: entered and left within one Update
)

func (s State) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case NewLevel:
		return "NewLevel"
	}
	return "Unknown"
}

// Simulates reports whether entities advance in this state.
func (s State) Simulates() bool {
	return s == Running || s == NewLevel
}

// Overlay is the full-screen fill and centred message drawn over the field.
type Overlay struct {
	Text string
	Fill color.RGBA
}

// Overlay returns the overlay for s, if it has one.
func (s State) Overlay() (Overlay, bool) {
	switch s {
	case Paused:
		return Overlay{Text: config.PausedText, Fill: config.PauseOverlayColor}, true
	case Menu:
		return Overlay{Text: config.MenuText, Fill: config.SolidOverlayColor}, true
	case GameOver:
		return Overlay{Text: config.GameOverText, Fill: config.SolidOverlayColor}, true
	}
	return Overlay{}, false
}

// Change is the payload of event.StateChanged.
type Change struct {
	From, To State
}

// StateMachine holds the single active State and announces transitions.
type StateMachine struct {
	current State
	events  *event.Dispatcher
}

// NewStateMachine creates a machine in Menu. events may be nil.
func NewStateMachine(events *event.Dispatcher) *StateMachine {
	return &StateMachine{current: Menu, events: events}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Is reports whether the active state is one of states.
func (sm *StateMachine) Is(states ...State) bool {
	for _, s := range states {
		if sm.current == s {
			return true
		}
	}
	return false
}

// SetState switches to newState and dispatches StateChanged. Setting the
// active state again does nothing.
func (sm *StateMachine) SetState(newState State) {
	if sm.current == newState {
		return
	}
	change := Change{From: sm.current, To: newState}
	sm.current = newState
	sm.events.Emit(event.StateChanged, change)
}
