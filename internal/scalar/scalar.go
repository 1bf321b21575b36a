//go:build !float32

// Package scalar fixes the floating-point precision used throughout
// the section engine. The default build computes in float64 on the
// standard math package; building with -tags float32 switches the
// whole engine to float32 backed by github.com/chewxy/math32.
package scalar

import "math"

// Float is the scalar type every section property is expressed in.
type Float = float64

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
	return math.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x Float) Float {
	return math.Sqrt(x)
}

// Hypot returns Sqrt(p*p + q*q) without undue overflow or underflow.
func Hypot(p, q Float) Float {
	return math.Hypot(p, q)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x Float) (sin, cos Float) {
	return math.Sincos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant. Atan2(0, 0) = 0.
func Atan2(y, x Float) Float {
	return math.Atan2(y, x)
}
