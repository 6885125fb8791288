package game

import "math/rand"

const (
	SpeedIncrement = 1.05 // Horizontal speed-up on every paddle hit
	SpinFactor     = 2    // Vertical velocity added per unit of hit position
)

type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Move advances the ball by one frame of velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceWalls reflects the ball off the top or bottom wall. The ball is
// snapped inside the court and true is returned when a bounce happened.
func (b *Ball) BounceWalls(radius, height float64) bool {
	if b.Y-radius > 0 && b.Y+radius < height {
		return false
	}
	if b.Y-radius <= 0 {
		b.Y = radius
	} else {
		b.Y = height - radius
	}
	b.DY = -b.DY
	return true
}

// BounceOffPaddle reverses and speeds up horizontal motion, adds spin from
// where the ball met the paddle, moves the ball flush with the paddle face
// and caps the resulting speed.
func (b *Ball) BounceOffPaddle(p *Paddle, c Constants) {
	b.DX *= -SpeedIncrement

	b.DY += HitPosition(b.Y, p.CenterY(c), c.PaddleHeight) * SpinFactor

	if p.Side == SideLeft {
		b.X = c.LeftPaddleX + c.PaddleWidth + c.BallRadius
	} else {
		b.X = c.RightPaddleX - c.BallRadius
	}

	b.DX, b.DY = ClampSpeed(b.DX, b.DY, c.MaxBallSpeed)
}

// HitPosition is the contact offset from the paddle center, normalized so
// the paddle ends are -1 and 1. Overlap at the corners can fall slightly
// outside that range.
func HitPosition(ballY, paddleCenter, paddleHeight float64) float64 {
	return (ballY - paddleCenter) / (paddleHeight / 2)
}

// NewServe returns a ball at the court center moving horizontally in dir
// (+1 right, -1 left) with a random vertical velocity.
func NewServe(d Dimensions, dir float64, rng *rand.Rand) Ball {
	vx, vy := d.ServeSpeed()
	return Ball{
		X:  d.Width / 2,
		Y:  d.Height / 2,
		DX: vx * dir,
		DY: vy * (rng.Float64()*2 - 1),
	}
}

// NewKickoff returns a centered ball with independent random signs on both
// axes, used when a game (re)starts.
func NewKickoff(d Dimensions, rng *rand.Rand) Ball {
	vx, vy := d.ServeSpeed()
	return Ball{
		X:  d.Width / 2,
		Y:  d.Height / 2,
		DX: vx * randomSign(rng),
		DY: vy * randomSign(rng),
	}
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
