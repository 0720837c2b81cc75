package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestNewCollectorRegistersAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "opcuaview")

	c.ContinuationPointsIssued.Inc()
	c.ContinuationPointsReleased.Inc()
	c.ContinuationPointsExhausted.Inc()
	c.ReferencesEmitted.Observe(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["opcuaview_browse_continuation_points_issued_total"])
	require.True(t, names["opcuaview_browse_continuation_points_released_total"])
	require.True(t, names["opcuaview_browse_continuation_points_exhausted_total"])
	require.True(t, names["opcuaview_browse_references_emitted"])
}

func TestCollectorCounterValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "opcuaview")
	c.ContinuationPointsIssued.Inc()
	c.ContinuationPointsIssued.Inc()

	var m dto.Metric
	require.NoError(t, c.ContinuationPointsIssued.Write(&m))
	require.Equal(t, float64(2), m.GetCounter().GetValue())
}
