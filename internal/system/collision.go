// internal/system/collision.go
package system

import "go-brick-breaker/internal/component"

// Collides reports whether moving touches rect.
//
// Vertically the spans only have to overlap, but horizontally the whole of
// moving must lie inside rect: a ball clipping the corner of a tile or the
// edge of the paddle passes through.
func Collides(moving component.Square, rect component.Box) bool {
	return moving.Bottom() >= rect.Top() &&
		moving.Top() <= rect.Bottom() &&
		moving.Left() >= rect.Left() &&
		moving.Right() <= rect.Right()
}
