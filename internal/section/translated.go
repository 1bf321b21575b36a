package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Translated moves the wrapped section by Offset, which is the same
// thing as shifting the reference origin by -Offset. This is the only
// way to bring sections expressed about different origins into one
// shared frame before combining them.
type Translated struct {
	Origin Section
	Offset [2]scalar.Float
}

func (t Translated) Area() scalar.Float {
	return t.Origin.Area()
}

func (t Translated) Centroid() [2]scalar.Float {
	c := t.Origin.Centroid()
	for i, o := range t.Offset {
		c[i] += o
	}
	return c
}

// MomentOfInertia applies the parallel-axis theorem incrementally:
// the wrapped centroid already sits origin.Centroid away from the old
// reference, so shifting by Offset adds A·offset² plus the cross term
// 2·A·centroid·offset for the two successive shifts.
func (t Translated) MomentOfInertia() [2]scalar.Float {
	a := t.Origin.Area()
	c := t.Origin.Centroid()
	j := t.Origin.MomentOfInertia()
	for i, o := range t.Offset {
		j[i] += (o + 2*c[i]) * o * a
	}
	return j
}

func (t Translated) ProductOfInertia() scalar.Float {
	c := t.Origin.Centroid()
	cross := sortedSum(
		t.Offset[0]*c[1],
		t.Offset[1]*c[0],
		t.Offset[0]*t.Offset[1],
	)
	return t.Origin.ProductOfInertia() + cross*t.Origin.Area()
}
