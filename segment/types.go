package segment

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors for segmentation calls. Returned errors wrap one of these
// with context; match them with errors.Is.
var (
	// ErrInvalidSize indicates a negative element count or an edge endpoint outside [0, n).
	ErrInvalidSize = errors.New("segment: invalid size")

	// ErrInvalidOrder indicates a supplied edge order that is not a permutation of [0, m).
	ErrInvalidOrder = errors.New("segment: invalid edge order")

	// ErrInvalidParameter indicates a bad scale or a bad edge weight.
	ErrInvalidParameter = errors.New("segment: invalid parameter")
)

// Edge connects elements A and B with a non-negative dissimilarity Weight.
// Direction is irrelevant; A == B is allowed and never merges anything.
type Edge struct {
	A, B   int
	Weight float64
}

// Options configures a segmentation call.
//
// Fields:
//
//	Scale   float64     — threshold constant c; must be finite and > 0.
//	MinSize int         — minimum segment size for the cleanup pass; ≤ 0 disables it.
//	Order   []int       — optional edge visitation order; nil means sort by weight.
//	Logger  *zap.Logger — debug logging sink; nil means no logging.
//
// Use DefaultOptions() and the With* helpers rather than building the struct by hand.
type Options struct {
	Scale   float64
	MinSize int
	Order   []int
	Logger  *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Scale=1, MinSize=-1 (cleanup disabled), no supplied order
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Scale:   1,
		MinSize: -1,
		Order:   nil,
		Logger:  zap.NewNop(),
	}
}

// WithScale sets the threshold constant c.
func WithScale(c float64) Option {
	return func(o *Options) {
		o.Scale = c
	}
}

// WithMinSize sets the minimum segment size enforced by the cleanup pass.
func WithMinSize(k int) Option {
	return func(o *Options) {
		o.MinSize = k
	}
}

// WithOrder supplies a precomputed edge order and skips the internal sort.
// The order must be a permutation of [0, len(edges)); it is expected to list
// edges by non-decreasing weight, which is not re-checked.
func WithOrder(order []int) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Stats counts what the merge passes did during one call.
type Stats struct {
	// Edges is the number of edges visited per pass.
	Edges int `json:"edges"`
	// Merges is the number of joins made by the greedy pass.
	Merges int `json:"merges"`
	// Rejected is the number of edges between different groups refused by the threshold test.
	Rejected int `json:"rejected"`
	// CleanupMerges is the number of joins forced by the cleanup pass.
	CleanupMerges int `json:"cleanup-merges"`
}

// Result is the outcome of a segmentation call.
type Result struct {
	// Labels holds one cluster id per element, in [0, NumSegments).
	Labels []int
	// NumSegments is the number of distinct clusters.
	NumSegments int
	// Sizes[k] is the number of elements labelled k.
	Sizes []int
	// Stats describes the merge passes.
	Stats Stats
}
