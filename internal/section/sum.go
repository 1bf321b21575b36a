package section

import (
	"cmp"
	"slices"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

// sortedSum adds terms in ascending order of absolute value. Sums in
// this package routinely mix terms of similar magnitude and opposite
// sign (a hole cancelling a solid's moment, rotation cross terms);
// accumulating small-to-large keeps the cancellation error down.
func sortedSum(terms ...scalar.Float) scalar.Float {
	slices.SortFunc(terms, func(a, b scalar.Float) int {
		return cmp.Compare(scalar.Abs(a), scalar.Abs(b))
	})
	var sum scalar.Float
	for _, t := range terms {
		sum += t
	}
	return sum
}
