package game

import "math"

// Court limits in court units
const (
	MaxCourtWidth  = 700
	MaxCourtHeight = 400
	MinCourtWidth  = 160
	MinCourtHeight = 96
)

// Dimensions is the size of the court in court units
type Dimensions struct {
	Width  float64
	Height float64
}

// Margin is the space kept free around the court when fitting a viewport
type Margin struct {
	X, Y float64
}

// Fit sizes the court for the available viewport area
func Fit(availWidth, availHeight float64, m Margin) Dimensions {
	return Dimensions{
		Width:  Clamp(availWidth-m.X, MinCourtWidth, MaxCourtWidth),
		Height: Clamp(availHeight-m.Y, MinCourtHeight, MaxCourtHeight),
	}
}

// Constants holds the sizes and speeds derived from Dimensions.
// Sizes have minimums so the game stays playable on small courts.
type Constants struct {
	PaddleWidth  float64
	PaddleHeight float64
	BallRadius   float64
	LeftPaddleX  float64
	RightPaddleX float64
	MoveSpeed    float64
	MaxBallSpeed float64
}

// Constants derives the gameplay constants for these dimensions
func (d Dimensions) Constants() Constants {
	return Constants{
		PaddleWidth:  math.Max(d.Width*0.015, 8),
		PaddleHeight: math.Max(d.Height*0.18, 40),
		BallRadius:   math.Max(d.Width*0.012, 6),
		LeftPaddleX:  d.Width * 0.05,
		RightPaddleX: d.Width * 0.935,
		MoveSpeed:    d.Height * 0.018,
		MaxBallSpeed: math.Max(d.Width, d.Height) * 0.012,
	}
}

// MaxPaddleY is the lowest top edge a paddle may have
func (d Dimensions) MaxPaddleY() float64 {
	return d.Height - d.Constants().PaddleHeight
}

// ServeSpeed returns the horizontal and vertical serve speed magnitudes
func (d Dimensions) ServeSpeed() (float64, float64) {
	return d.Width * 0.004, d.Height * 0.003
}
