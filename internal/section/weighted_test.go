package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

func TestWeightedScalesAreaAndMoments(t *testing.T) {
	origin := stub{
		area: 15,
		c:    [2]scalar.Float{0.5, 1.0},
		j:    [2]scalar.Float{5*3*3*3/12.0 + 0.5*0.5*15, 3*5*5*5/12.0 + 15},
		jxy:  15 * 0.5 * 1.0,
	}
	w := Weighted{Origin: origin, Weight: -1.5}

	assert.InDelta(t, -15*1.5, w.Area(), 1e-12)
	j := w.MomentOfInertia()
	assert.InDelta(t, -1.5*origin.j[0], j[0], 1e-12)
	assert.InDelta(t, -1.5*origin.j[1], j[1], 1e-12)
	assert.InDelta(t, -1.5*origin.jxy, w.ProductOfInertia(), 1e-12)
}

func TestWeightedKeepsCentroid(t *testing.T) {
	// Weighting scales material, it does not move it.
	origin := Circle{Radius: 2, Offset: [2]scalar.Float{0.5, 1.0}}
	w := Weighted{Origin: origin, Weight: -1.5}
	assert.Equal(t, origin.Centroid(), w.Centroid())
}

func TestWeightedUnitIsIdentity(t *testing.T) {
	origin := Rectangle{Size: [2]scalar.Float{4.9, 8.1}}
	w := Weighted{Origin: origin, Weight: 1}
	assert.Equal(t, origin.Area(), w.Area())
	assert.Equal(t, origin.MomentOfInertia(), w.MomentOfInertia())
	assert.Equal(t, origin.ProductOfInertia(), w.ProductOfInertia())
}
