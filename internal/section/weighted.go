package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Weighted scales the wrapped section's area and moments by Weight.
// A negative weight models removed material (a hole); other weights
// can express a modular ratio between materials. The centroid is
// untouched: weighting does not move the shape.
type Weighted struct {
	Origin Section
	Weight scalar.Float
}

func (w Weighted) Area() scalar.Float {
	return w.Origin.Area() * w.Weight
}

func (w Weighted) Centroid() [2]scalar.Float {
	return w.Origin.Centroid()
}

func (w Weighted) MomentOfInertia() [2]scalar.Float {
	j := w.Origin.MomentOfInertia()
	for i := range j {
		j[i] *= w.Weight
	}
	return j
}

func (w Weighted) ProductOfInertia() scalar.Float {
	return w.Origin.ProductOfInertia() * w.Weight
}
