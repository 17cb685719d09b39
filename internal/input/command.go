// internal/input/command.go
package input

// Command is a discrete player action applied between frames.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	Stop
	TogglePause
	Start
	// ReleaseLeft and ReleaseRight stop the paddle only if it is still moving
	// that way, so releasing one arrow while holding the other keeps moving.
	ReleaseLeft
	ReleaseRight
)

var commandNames = [...]string{
	MoveLeft:     "MoveLeft",
	MoveRight:    "MoveRight",
	Stop:         "Stop",
	TogglePause:  "TogglePause",
	Start:        "Start",
	ReleaseLeft:  "ReleaseLeft",
	ReleaseRight: "ReleaseRight",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	return c >= 0 && int(c) < len(commandNames)
}

// Handler applies commands.
type Handler interface {
	Apply(cmd Command)
}

// Stamped is a command tagged with the number of frames already simulated
// when it was applied.
type Stamped struct {
	Frame   uint64  `msgpack:"f"`
	Command Command `msgpack:"c"`
}
