package component

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	Position
	Width, Height float64
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Square is a moving entity treated as an axis-aligned square of side Size.
type Square struct {
	Position
	Size float64
}

func (s Square) Left() float64   { return s.X }
func (s Square) Right() float64  { return s.X + s.Size }
func (s Square) Top() float64    { return s.Y }
func (s Square) Bottom() float64 { return s.Y + s.Size }
