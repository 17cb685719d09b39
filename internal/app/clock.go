package app

import (
	"time"

	"go-brick-breaker/internal/config"
)

// FrameDelta converts the wall time since the last tick to the millisecond
// delta passed to Update, capped at config.MaxDeltaTime so a stalled frame
// does not arrive as one huge step.
func FrameDelta(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	switch {
	case ms < 0:
		return 0
	case ms > config.MaxDeltaTime:
		return config.MaxDeltaTime
	}
	return ms
}
