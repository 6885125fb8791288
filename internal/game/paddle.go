package game

import "math"

// Side identifies which end of the court a paddle defends
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle is a player's bat. Y is the top edge.
type Paddle struct {
	Side     Side
	Controls Controls
	Y        float64
}

func NewPaddle(side Side, controls Controls) *Paddle {
	return &Paddle{Side: side, Controls: controls}
}

// Center places the paddle in the vertical middle of the court
func (p *Paddle) Center(d Dimensions) {
	p.Y = d.Height/2 - d.Constants().PaddleHeight/2
}

// Move applies held keys. Up and down are evaluated independently, each
// guarded and clamped, so holding both can still move a paddle off an edge.
func (p *Paddle) Move(in *InputTracker, d Dimensions) {
	c := d.Constants()
	maxY := d.MaxPaddleY()

	if in.IsHeld(p.Controls.Up) && p.Y > 0 {
		p.Y = math.Max(0, p.Y-c.MoveSpeed)
	}
	if in.IsHeld(p.Controls.Down) && p.Y < maxY {
		p.Y = math.Min(maxY, p.Y+c.MoveSpeed)
	}
}

// X returns the left edge of the paddle
func (p *Paddle) X(c Constants) float64 {
	if p.Side == SideLeft {
		return c.LeftPaddleX
	}
	return c.RightPaddleX
}

// CenterY returns the vertical middle of the paddle
func (p *Paddle) CenterY(c Constants) float64 {
	return p.Y + c.PaddleHeight/2
}

// Hit reports whether the ball overlaps the paddle
func (p *Paddle) Hit(b *Ball, c Constants) bool {
	return CircleIntersectsRect(b.X, b.Y, c.BallRadius, p.X(c), p.Y, c.PaddleWidth, c.PaddleHeight)
}
