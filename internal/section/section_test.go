package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

// stub is a fixed-property Section used to exercise decorators and
// the aggregator in isolation from the primitive formulas.
type stub struct {
	area scalar.Float
	c    [2]scalar.Float
	j    [2]scalar.Float
	jxy  scalar.Float
}

func (s stub) Area() scalar.Float               { return s.area }
func (s stub) Centroid() [2]scalar.Float        { return s.c }
func (s stub) MomentOfInertia() [2]scalar.Float { return s.j }
func (s stub) ProductOfInertia() scalar.Float   { return s.jxy }

// rectStub mimics a w×h rectangle whose centroid sits at c, with
// moments expressed about the reference origin (centroidal moment
// plus parallel-axis terms).
func rectStub(w, h scalar.Float, c [2]scalar.Float) stub {
	a := w * h
	return stub{
		area: a,
		c:    c,
		j: [2]scalar.Float{
			h*w*w*w/12 + c[0]*c[0]*a,
			w*h*h*h/12 + c[1]*c[1]*a,
		},
		jxy: a * c[0] * c[1],
	}
}

func TestPrincipalAxisCenteredRotatedRectangle(t *testing.T) {
	// A 4.9×8.1 rectangle centered on the origin with its axes
	// rotated 13 degrees off the reference axes. The solver must
	// recover the 13 degrees.
	jy0 := scalar.Float(8.1*4.9*4.9*4.9) / 12
	jx0 := scalar.Float(4.9*8.1*8.1*8.1) / 12
	avg := (jx0 + jy0) / 2
	diff := (jx0 - jy0) / 2
	sin, cos := scalar.Sincos(13 * scalar.DegToRad * 2)
	s := stub{
		area: 4.9 * 8.1,
		j:    [2]scalar.Float{avg - diff*cos, avg + diff*cos},
		jxy:  -diff * sin,
	}
	assert.InDelta(t, 13.0, PrincipalAxis(s)*scalar.RadToDeg, 1e-10)
}

func TestPrincipalAxisRotatedOffsetRectangle(t *testing.T) {
	// Width 4, height 6, centroid [1.2, 2.0], axes rotated by -15
	// degrees: the full centroidal-correction + Mohr pipeline must
	// recover -15 degrees.
	r := Rectangle{
		Size:   [2]scalar.Float{4, 6},
		Offset: [2]scalar.Float{1.2 - 2, 2.0 - 3},
	}
	s := Rotated{Origin: r, Angle: -15 * scalar.DegToRad}
	assert.InDelta(t, -15.0, PrincipalAxis(s)*scalar.RadToDeg, 1e-10)
}

func TestPrincipalAxisCircleIsDegenerate(t *testing.T) {
	// A circle has no preferred axis: after the centroidal correction
	// both atan2 arguments vanish and the solver settles on 0.
	assert.Zero(t, PrincipalAxis(Circle{Radius: 5.1}))
	assert.Zero(t, PrincipalAxis(Circle{Radius: -3.3}))
	assert.InDelta(t, 0.0,
		PrincipalAxis(Circle{Radius: 2, Offset: [2]scalar.Float{4, 4}}), 1e-12)
}

func TestPrincipalAxisOffsetCircleDiscriminantsVanish(t *testing.T) {
	// For an offset circle the reverse parallel-axis correction must
	// cancel the moments down to their (equal) centroidal values:
	// both Mohr discriminants shrink to rounding noise and the solver
	// stays finite. The axis direction itself is meaningless here.
	offsets := [][2]scalar.Float{
		{3.4, 9.0},
		{-9.0, 3.4},
		{-3.4, -9.0},
		{9.0, -3.4},
	}
	for _, off := range offsets {
		c := Circle{Radius: 5.1, Offset: off}
		a := c.Area()
		j := c.MomentOfInertia()
		jxyc := c.ProductOfInertia() - off[0]*off[1]*a
		jyc := j[0] - off[0]*off[0]*a
		jxc := j[1] - off[1]*off[1]*a

		central := scalar.Pi * 5.1 * 5.1 * 5.1 * 5.1 / 4
		assert.InDelta(t, 0, jxyc, 1e-8, "offset %v", off)
		assert.InDelta(t, central, jyc, 1e-8, "offset %v", off)
		assert.InDelta(t, central, jxc, 1e-8, "offset %v", off)
		assert.False(t, math.IsNaN(float64(PrincipalAxis(c))), "offset %v", off)
	}
}

func TestPrincipalAxisOrthogonalAxis(t *testing.T) {
	// Swapping the axes of an asymmetric section flips which
	// principal direction is reported; the two differ by 90 degrees.
	tall := Rectangle{Size: [2]scalar.Float{2, 8}}
	wide := Rectangle{Size: [2]scalar.Float{8, 2}}
	a1 := PrincipalAxis(Translated{Origin: tall, Offset: [2]scalar.Float{1, 3}})
	a2 := PrincipalAxis(Translated{Origin: wide, Offset: [2]scalar.Float{3, 1}})
	assert.InDelta(t, scalar.Pi/2, scalar.Abs(a1-a2), 1e-10)
}
