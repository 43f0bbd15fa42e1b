package segment

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvseg/dsu"
	"github.com/katalvlaran/lvseg/metrics"
)

// Segment partitions the n elements joined by edges into segments.
//
// Steps:
//  1. Apply opts over DefaultOptions() and validate n, scale, edges and any supplied order.
//  2. Build the visitation order: the supplied one, or SortOrder(edges).
//  3. Run the greedy pass, then the cleanup pass when MinSize > 0.
//  4. Relabel the final forest into contiguous cluster ids.
//
// Returns (nil, err) on invalid input, with err wrapping ErrInvalidSize,
// ErrInvalidOrder or ErrInvalidParameter. Each call works on its own state.
//
// Complexity: O(m log m + (n + m)·α(n)) time, O(n + m) memory.
func Segment(n int, edges []Edge, opts ...Option) (*Result, error) {
	start := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	// 1. Validate everything up front.
	if err := validate(n, edges, &o); err != nil {
		metrics.RunCounter.WithLabelValues(metrics.ResultError).Inc()
		o.Logger.Debug("segmentation rejected", zap.Int("vertices", n), zap.Int("edges", len(edges)), zap.Error(err))

		return nil, err
	}

	// 2. Edge order.
	order := o.Order
	if order == nil {
		order = SortOrder(edges)
	}

	// 3. Merge passes over a fresh forest.
	s := newSegmenter(n, edges, order, o.Scale)
	s.mergePass()
	if o.MinSize > 0 {
		s.cleanupPass(o.MinSize)
	}

	// 4. Relabel.
	labels, sizes := relabel(s.forest)
	res := &Result{
		Labels:      labels,
		NumSegments: len(sizes),
		Sizes:       sizes,
		Stats:       s.stats,
	}

	metrics.RunCounter.WithLabelValues(metrics.ResultOK).Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	metrics.EdgeCounter.Add(float64(len(edges)))
	metrics.MergeCounter.WithLabelValues(metrics.PassGreedy).Add(float64(s.stats.Merges))
	metrics.MergeCounter.WithLabelValues(metrics.PassCleanup).Add(float64(s.stats.CleanupMerges))
	metrics.SegmentsHistogram.Observe(float64(res.NumSegments))
	o.Logger.Debug("segmentation finished",
		zap.Int("vertices", n),
		zap.Int("edges", len(edges)),
		zap.Float64("scale", o.Scale),
		zap.Int("min-size", o.MinSize),
		zap.Bool("supplied-order", o.Order != nil),
		zap.Int("merges", s.stats.Merges),
		zap.Int("cleanup-merges", s.stats.CleanupMerges),
		zap.Int("segments", res.NumSegments),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// Labels is a shorthand for Segment that returns only the cluster ids.
func Labels(n int, edges []Edge, c float64, minSize int) ([]int, error) {
	res, err := Segment(n, edges, WithScale(c), WithMinSize(minSize))
	if err != nil {
		return nil, err
	}

	return res.Labels, nil
}

// segmenter owns the mutable state of one call: the forest and the threshold table.
type segmenter struct {
	forest    *dsu.Forest
	threshold []float64
	edges     []Edge
	order     []int
	scale     float64
	stats     Stats
}

// newSegmenter allocates the forest and sets every threshold to c, i.e. c/1.
// n has already been validated as non-negative.
func newSegmenter(n int, edges []Edge, order []int, c float64) *segmenter {
	forest, _ := dsu.New(n)
	threshold := make([]float64, n)
	for i := range threshold {
		threshold[i] = c
	}

	return &segmenter{
		forest:    forest,
		threshold: threshold,
		edges:     edges,
		order:     order,
		scale:     c,
		stats:     Stats{Edges: len(order)},
	}
}

// mergePass is the Felzenszwalb–Huttenlocher greedy pass. An edge merges its two
// groups only when its weight is within both groups' thresholds; the surviving
// root then gets threshold w + c/|root|.
func (s *segmenter) mergePass() {
	f := s.forest
	for _, p := range s.order {
		e := s.edges[p]
		a, b := f.Find(e.A), f.Find(e.B)
		if a == b {
			continue
		}
		if e.Weight <= s.threshold[a] && e.Weight <= s.threshold[b] {
			f.Join(a, b)
			r := f.Find(a)
			s.threshold[r] = e.Weight + s.scale/float64(f.Size(r))
			s.stats.Merges++
		} else {
			s.stats.Rejected++
		}
	}
}

// cleanupPass sweeps the order once and joins any two different groups when
// either is smaller than minSize. Sizes seen later in the sweep include earlier
// joins. Thresholds are not touched.
func (s *segmenter) cleanupPass(minSize int) {
	f := s.forest
	for _, p := range s.order {
		e := s.edges[p]
		a, b := f.Find(e.A), f.Find(e.B)
		if a != b && (f.Size(a) < minSize || f.Size(b) < minSize) {
			f.Join(a, b)
			s.stats.CleanupMerges++
		}
	}
}
