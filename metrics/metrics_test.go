package metrics_test

import (
	"testing"

	"github.com/katalvlaran/lvseg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterMetrics verifies all collectors register once and fail on a second registration.
func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { metrics.RegisterMetrics(reg) })
	assert.Panics(t, func() { metrics.RegisterMetrics(reg) }, "duplicate registration must panic")

	metrics.RunCounter.WithLabelValues(metrics.ResultOK).Inc()
	metrics.EdgeCounter.Add(3)
	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["lvseg_segment_runs_total"])
	assert.True(t, names["lvseg_segment_edges_total"])
}

// TestCounters_Increment checks the counter vectors accept the documented label values.
func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(metrics.MergeCounter.WithLabelValues(metrics.PassCleanup))
	metrics.MergeCounter.WithLabelValues(metrics.PassCleanup).Add(2)
	after := testutil.ToFloat64(metrics.MergeCounter.WithLabelValues(metrics.PassCleanup))
	assert.Equal(t, before+2, after)
}
