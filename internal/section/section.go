// Package section computes geometric properties of structural
// cross-sections: area, centroid, second moments of area, product of
// inertia and principal-axis orientation.
//
// A cross-section is a tree of Section values: Circle and Rectangle at
// the leaves, the Translated, Rotated and Weighted decorators and the
// Combined aggregator as internal nodes. Every implementation reports
// its moments about the tree's shared reference origin, not about its
// own centroid. That convention is what makes Combined a plain sum:
// children from different reference frames must be brought into the
// shared frame with Translated before they are combined, otherwise
// the results are silently wrong.
package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Section is the capability every shape, decorator and aggregate
// implements. MomentOfInertia reports [Jy, Jx], the second moments
// about the y- and x-direction axes through the reference origin,
// and ProductOfInertia reports Jxy about the same origin. Area is
// non-negative for plain shapes; a Weighted wrapper may make it
// negative to model holes.
type Section interface {
	Area() scalar.Float
	Centroid() [2]scalar.Float
	MomentOfInertia() [2]scalar.Float
	ProductOfInertia() scalar.Float
}

// PrincipalAxis returns the orientation of a principal axis of the
// section, in radians from the x-axis. The orthogonal principal axis
// is the returned angle plus π/2.
//
// The section's origin-referenced moments are first reduced to
// centroidal moments by the reverse parallel-axis theorem. Fully
// symmetric sections (a circle, regardless of offset) reduce to
// Jxy = 0 and Jx = Jy, for which Atan2(0, 0) = 0 is returned: every
// axis is principal and none is preferred.
func PrincipalAxis(s Section) scalar.Float {
	a := s.Area()
	c := s.Centroid()
	j := s.MomentOfInertia()
	jxy := s.ProductOfInertia() - c[0]*c[1]*a
	jy := j[0] - c[0]*c[0]*a
	jx := j[1] - c[1]*c[1]*a
	return scalar.Atan2(-2*jxy, jx-jy) * 0.5
}
