package segment

import (
	"math"

	"github.com/pkg/errors"
)

// validate rejects malformed input before any state is allocated.
func validate(n int, edges []Edge, opts *Options) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidSize, "element count %d", n)
	}
	if opts.Scale <= 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		return errors.Wrapf(ErrInvalidParameter, "scale %v must be finite and positive", opts.Scale)
	}
	for i, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return errors.Wrapf(ErrInvalidSize, "edge %d (%d, %d) outside [0, %d)", i, e.A, e.B, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return errors.Wrapf(ErrInvalidParameter, "edge %d weight %v is not finite", i, e.Weight)
		}
		if e.Weight < 0 {
			return errors.Wrapf(ErrInvalidParameter, "edge %d weight %v is negative", i, e.Weight)
		}
	}
	if opts.Order != nil {
		return ValidateOrder(opts.Order, len(edges))
	}

	return nil
}
