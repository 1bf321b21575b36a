package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Rotated turns the reference axes counter-clockwise by Angle
// (radians) about the reference origin, which rotates the shape by
// -Angle relative to the axes. The moment transform therefore runs
// Mohr's circle at -2·Angle.
type Rotated struct {
	Origin Section
	Angle  scalar.Float
}

func (r Rotated) Area() scalar.Float {
	return r.Origin.Area()
}

func (r Rotated) Centroid() [2]scalar.Float {
	sin, cos := scalar.Sincos(r.Angle)
	c := r.Origin.Centroid()
	return [2]scalar.Float{
		c[0]*cos - c[1]*sin,
		c[0]*sin + c[1]*cos,
	}
}

func (r Rotated) MomentOfInertia() [2]scalar.Float {
	sin, cos := scalar.Sincos(r.Angle * -2)
	j := r.Origin.MomentOfInertia()
	jxy := r.Origin.ProductOfInertia()
	avg := (j[0] + j[1]) * 0.5
	diff := (j[0] - j[1]) * cos * 0.5
	cross := jxy * sin
	return [2]scalar.Float{
		sortedSum(avg, diff, cross),
		sortedSum(avg, -diff, -cross),
	}
}

func (r Rotated) ProductOfInertia() scalar.Float {
	sin, cos := scalar.Sincos(r.Angle * -2)
	j := r.Origin.MomentOfInertia()
	return (j[1]-j[0])*sin*0.5 + r.Origin.ProductOfInertia()*cos
}
