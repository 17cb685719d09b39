package render

import "image/color"

// Op names a Surface primitive.
type Op int

const (
	OpFillRect Op = iota
	OpSprite
	OpText
)

// Call is one recorded Surface invocation.
type Call struct {
	Op     Op
	X, Y   float64
	W, H   float64
	Color  color.Color
	Sprite Sprite
	Text   string
	Font   Font
	Align  Align
}

// Recorder is a Surface that keeps every call in order. Headless runs and
// tests draw into it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawSprite(s Sprite, x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: OpSprite, X: x, Y: y, W: w, H: h, Sprite: s})
}

func (r *Recorder) DrawText(text string, x, y float64, f Font, align Align, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Text: text, Font: f, Align: align, Color: c})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
