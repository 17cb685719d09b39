package entity

import (
	"testing"

	"go-brick-breaker/internal/config"
	"go-brick-breaker/internal/render"
)

func TestNewPaddlePlacement(t *testing.T) {
	p := NewPaddle(config.Default())
	if p.Position.X != 325 || p.Position.Y != 570 {
		t.Errorf("paddle at %+v, want (325,570)", p.Position)
	}
	if p.Speed() != 0 {
		t.Errorf("new paddle speed = %v", p.Speed())
	}
}

func TestPaddleCommands(t *testing.T) {
	p := NewPaddle(config.Default())

	p.MoveLeft()
	if p.Speed() != -7 {
		t.Errorf("MoveLeft speed = %v, want -7", p.Speed())
	}
	p.Update(16)
	if p.Position.X != 318 {
		t.Errorf("after left step x = %v, want 318", p.Position.X)
	}

	p.MoveRight()
	if p.Speed() != 7 {
		t.Errorf("MoveRight speed = %v, want 7", p.Speed())
	}
	p.Update(16)
	if p.Position.X != 325 {
		t.Errorf("after right step x = %v, want 325", p.Position.X)
	}

	p.Stop()
	p.Update(16)
	if p.Speed() != 0 || p.Position.X != 325 {
		t.Errorf("stopped paddle moved: speed %v x %v", p.Speed(), p.Position.X)
	}
}

func TestPaddleStaysInField(t *testing.T) {
	s := config.Default()
	maxX := s.Width - s.Paddle.Width

	for _, start := range []float64{-50, 0, 3, 325, maxX - 3, maxX, maxX + 40} {
		for _, move := range []func(*Paddle){(*Paddle).MoveLeft, (*Paddle).MoveRight, (*Paddle).Stop} {
			p := NewPaddle(s)
			p.Position.X = start
			move(p)
			for i := 0; i < 200; i++ {
				p.Update(16)
				if p.Position.X < 0 || p.Position.X > maxX {
					t.Fatalf("start %v frame %d: x = %v outside [0, %v]", start, i, p.Position.X, maxX)
				}
			}
		}
	}
}

func TestPaddleDraw(t *testing.T) {
	p := NewPaddle(config.Default())
	var rec render.Recorder
	p.Draw(&rec)
	if len(rec.Calls) != 1 || rec.Calls[0].Op != render.OpFillRect {
		t.Fatalf("calls = %+v", rec.Calls)
	}
	c := rec.Calls[0]
	if c.X != 325 || c.Y != 570 || c.W != 150 || c.H != 20 || c.Color != config.PaddleColor {
		t.Errorf("paddle drawn as %+v", c)
	}
}
