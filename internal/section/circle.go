package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Circle is a solid circular section. Offset locates its centroid
// relative to the reference origin; the sign of Radius is irrelevant.
type Circle struct {
	Radius scalar.Float
	Offset [2]scalar.Float
}

func (c Circle) Area() scalar.Float {
	return scalar.Pi * c.Radius * c.Radius
}

func (c Circle) Centroid() [2]scalar.Float {
	return c.Offset
}

// MomentOfInertia fuses the centroidal moment π·r⁴/4 with the
// parallel-axis term A·offset² into one expression.
func (c Circle) MomentOfInertia() [2]scalar.Float {
	r2 := c.Radius * c.Radius
	var j [2]scalar.Float
	for i, o := range c.Offset {
		j[i] = (r2 + 4*o*o) * r2 * (scalar.Pi / 4)
	}
	return j
}

// ProductOfInertia is the pure parallel-axis cross term: a circle's
// centroidal product of inertia is zero by symmetry.
func (c Circle) ProductOfInertia() scalar.Float {
	return scalar.Pi * c.Radius * c.Radius * c.Offset[0] * c.Offset[1]
}
