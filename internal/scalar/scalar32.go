//go:build float32

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type every section property is expressed in.
type Float = float32

// Mathematical constants at engine precision.
const (
	Pi = math.Pi

	// DegToRad is the number of radians per degree.
	DegToRad = Pi / 180

	// RadToDeg is the number of degrees per radian.
	RadToDeg = 180 / Pi
)

// Abs returns the absolute value of x.
func Abs(x Float) Float {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x Float) Float {
	return math32.Sqrt(x)
}

// Hypot returns Sqrt(p*p + q*q) without undue overflow or underflow.
func Hypot(p, q Float) Float {
	return math32.Hypot(p, q)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x Float) (sin, cos Float) {
	return math32.Sincos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant. Atan2(0, 0) = 0.
func Atan2(y, x Float) Float {
	return math32.Atan2(y, x)
}
