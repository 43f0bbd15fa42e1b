// Package metrics holds the Prometheus collectors updated by the segmentation
// passes. Collectors are package-level and must be registered once by the
// process through RegisterMetrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values.
const (
	LblResult = "result"
	LblPass   = "pass"

	ResultOK    = "ok"
	ResultError = "error"

	PassGreedy  = "greedy"
	PassCleanup = "cleanup"
)

// Metrics
var (
	RunCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvseg",
			Subsystem: "segment",
			Name:      "runs_total",
			Help:      "Counter of segmentation calls by result.",
		}, []string{LblResult})

	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lvseg",
			Subsystem: "segment",
			Name:      "duration_seconds",
			Help:      "Bucketed histogram of segmentation time (s) of successful calls.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 24), // 50us ~ 7min
		})

	MergeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lvseg",
			Subsystem: "segment",
			Name:      "merges_total",
			Help:      "Counter of group merges by pass.",
		}, []string{LblPass})

	EdgeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lvseg",
			Subsystem: "segment",
			Name:      "edges_total",
			Help:      "Counter of edges consumed by successful calls.",
		})

	SegmentsHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lvseg",
			Subsystem: "segment",
			Name:      "segments",
			Help:      "Bucketed histogram of the number of segments produced per call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 ~ 4M
		})
)

// RegisterMetrics registers every collector of this package with r.
func RegisterMetrics(r prometheus.Registerer) {
	r.MustRegister(RunCounter)
	r.MustRegister(RunDuration)
	r.MustRegister(MergeCounter)
	r.MustRegister(EdgeCounter)
	r.MustRegister(SegmentsHistogram)
}
