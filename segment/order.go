package segment

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// SortOrder returns the edge indices [0, len(edges)) ordered by non-decreasing
// weight. Equal weights keep their original relative order, so the result is
// the same on every run for the same input.
//
// Complexity: O(m log m) time, O(m) memory.
func SortOrder(edges []Edge) []int {
	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight
	}
	order := make([]int, len(edges))
	// ArgsortStable sorts weights in place and records where each came from.
	floats.ArgsortStable(weights, order)

	return order
}

// ValidateOrder checks that order is a permutation of [0, m).
//
// Returns an error wrapping ErrInvalidOrder when the length differs from m,
// when an index falls outside [0, m), or when an index repeats.
func ValidateOrder(order []int, m int) error {
	if len(order) != m {
		return errors.Wrapf(ErrInvalidOrder, "order has %d entries, want %d", len(order), m)
	}
	seen := bitset.New(uint(m))
	for i, p := range order {
		if p < 0 || p >= m {
			return errors.Wrapf(ErrInvalidOrder, "order[%d]=%d outside [0, %d)", i, p, m)
		}
		if seen.Test(uint(p)) {
			return errors.Wrapf(ErrInvalidOrder, "order[%d]=%d repeats an earlier entry", i, p)
		}
		seen.Set(uint(p))
	}

	return nil
}
