// internal/component/movement.go
package component

// Position is the top-left corner of an entity in logical units.
type Position struct {
	X, Y float64
}

// Velocity is a per-frame displacement. The paddle only uses X.
type Velocity struct {
	X, Y float64
}

// Add returns p moved by v.
func (p Position) Add(v Velocity) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}
