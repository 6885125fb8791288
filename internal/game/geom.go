package game

import "math"

// CircleIntersectsRect reports whether the bounding square of a circle
// overlaps an axis-aligned rectangle. Edges touching count as overlap.
// Corners of the square can register hits the circle itself would miss.
func CircleIntersectsRect(cx, cy, r, rectX, rectY, rectW, rectH float64) bool {
	return cx-r <= rectX+rectW &&
		cx+r >= rectX &&
		cy+r >= rectY &&
		cy-r <= rectY+rectH
}

// ClampSpeed scales (dx, dy) down so its magnitude does not exceed maxSpeed
func ClampSpeed(dx, dy, maxSpeed float64) (float64, float64) {
	speed := math.Hypot(dx, dy)
	if speed > maxSpeed {
		ratio := maxSpeed / speed
		return dx * ratio, dy * ratio
	}
	return dx, dy
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
