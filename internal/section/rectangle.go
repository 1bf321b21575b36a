package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Rectangle is a solid rectangular section. Offset locates the
// rectangle's own corner relative to the reference origin, so the
// centroid sits at Offset + Size/2. Signs of the Size components are
// irrelevant to area and moments.
type Rectangle struct {
	Size   [2]scalar.Float
	Offset [2]scalar.Float
}

func (r Rectangle) Area() scalar.Float {
	return scalar.Abs(r.Size[0] * r.Size[1])
}

func (r Rectangle) Centroid() [2]scalar.Float {
	var c [2]scalar.Float
	for i, s := range r.Size {
		c[i] = r.Offset[i] + s*0.5
	}
	return c
}

// MomentOfInertia generalizes the edge-moment formula b·h³/3 by the
// offset, giving the origin-referenced moment directly without a
// separate centroidal-then-shift step.
func (r Rectangle) MomentOfInertia() [2]scalar.Float {
	a := r.Size[0] * r.Size[1]
	var j [2]scalar.Float
	for i, s := range r.Size {
		j[i] = scalar.Abs((s*s/3 + (s+r.Offset[i])*r.Offset[i]) * a)
	}
	return j
}

// ProductOfInertia is the product over both axes of the distance from
// the reference origin to the rectangle's centroid line, weighted by
// the edge length: A·cx·cy plus the rectangle's own zero centroidal
// product.
func (r Rectangle) ProductOfInertia() scalar.Float {
	p := scalar.Float(1)
	for i, s := range r.Size {
		p *= scalar.Abs(s) * (s*0.5 + r.Offset[i])
	}
	return p
}
