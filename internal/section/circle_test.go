package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

func TestCircleArea(t *testing.T) {
	assert.InDelta(t, 3.2*3.2*scalar.Pi, Circle{Radius: 3.2}.Area(), 1e-12)
	// Only |radius| contributes.
	assert.InDelta(t, 3.3*3.3*scalar.Pi, Circle{Radius: -3.3}.Area(), 1e-12)
}

func TestCircleCentroidIsOffset(t *testing.T) {
	c := Circle{Radius: 2, Offset: [2]scalar.Float{-1.5, 4.25}}
	assert.Equal(t, c.Offset, c.Centroid())
	assert.Equal(t, [2]scalar.Float{}, Circle{Radius: 2}.Centroid())
}

func TestCircleCenteredMomentOfInertia(t *testing.T) {
	// Centered circle: Jy = Jx = π·r⁴/4, zero product of inertia.
	for _, radius := range []scalar.Float{3.2, -3.3, 0.4} {
		c := Circle{Radius: radius}
		want := scalar.Pi * radius * radius * radius * radius / 4
		j := c.MomentOfInertia()
		assert.InDelta(t, want, j[0], 1e-12)
		assert.InDelta(t, want, j[1], 1e-12)
		assert.Zero(t, c.ProductOfInertia())
	}
}

func TestCircleOffsetMomentOfInertia(t *testing.T) {
	// Parallel-axis theorem: π·r⁴/4 + A·offset² per axis.
	c := Circle{Radius: 5.1, Offset: [2]scalar.Float{3.4, 9.0}}
	a := scalar.Pi * 5.1 * 5.1
	j := c.MomentOfInertia()
	assert.InDelta(t, scalar.Pi*5.1*5.1*5.1*5.1/4+3.4*3.4*a, j[0], 1e-9)
	assert.InDelta(t, scalar.Pi*5.1*5.1*5.1*5.1/4+9.0*9.0*a, j[1], 1e-9)
	assert.InDelta(t, a*3.4*9.0, c.ProductOfInertia(), 1e-9)
}
