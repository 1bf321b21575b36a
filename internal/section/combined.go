package section

import "github.com/alexiusacademia/gosection/internal/scalar"

// Combined aggregates heterogeneous sections by summing their
// properties. Summation is only meaningful when every child already
// reports its moments about the same reference origin; wrapping
// children in Translated to meet that invariant is the caller's job.
//
// Every sum here goes through sortedSum: composites routinely pair a
// solid with a negative-weight hole of nearly the same magnitude, and
// ordering the terms small-to-large limits the cancellation error.
//
// The centroid of a composite with zero total area is undefined
// (division by zero); callers must not request it.
type Combined struct {
	Sections []Section
}

// Push appends a child section.
func (c *Combined) Push(s Section) {
	c.Sections = append(c.Sections, s)
}

func (c Combined) Area() scalar.Float {
	terms := make([]scalar.Float, len(c.Sections))
	for i, s := range c.Sections {
		terms[i] = s.Area()
	}
	return sortedSum(terms...)
}

func (c Combined) Centroid() [2]scalar.Float {
	areas := make([]scalar.Float, len(c.Sections))
	var firsts [2][]scalar.Float
	for i := range firsts {
		firsts[i] = make([]scalar.Float, len(c.Sections))
	}
	for i, s := range c.Sections {
		a := s.Area()
		areas[i] = a
		cc := s.Centroid()
		for n := range firsts {
			firsts[n][i] = cc[n] * a
		}
	}
	total := sortedSum(areas...)
	var out [2]scalar.Float
	for n := range firsts {
		out[n] = sortedSum(firsts[n]...) / total
	}
	return out
}

func (c Combined) MomentOfInertia() [2]scalar.Float {
	var terms [2][]scalar.Float
	for i := range terms {
		terms[i] = make([]scalar.Float, len(c.Sections))
	}
	for i, s := range c.Sections {
		j := s.MomentOfInertia()
		for n := range terms {
			terms[n][i] = j[n]
		}
	}
	var out [2]scalar.Float
	for n := range terms {
		out[n] = sortedSum(terms[n]...)
	}
	return out
}

func (c Combined) ProductOfInertia() scalar.Float {
	terms := make([]scalar.Float, len(c.Sections))
	for i, s := range c.Sections {
		terms[i] = s.ProductOfInertia()
	}
	return sortedSum(terms...)
}
