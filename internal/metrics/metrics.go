// Package metrics instruments the Browse Engine with the Prometheus
// client, the way absmach-magistrala/internal/metrics.go and its
// transport packages wire up request counters. It is entirely optional:
// an Engine with a nil Collector just skips every call below.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the counters and histogram this module's Browse Engine
// reports. Callers register it with their own prometheus.Registerer; this
// package never registers itself globally, mirroring how absmach's
// transport packages accept a registry rather than reaching for
// prometheus.DefaultRegisterer.
type Collector struct {
	ContinuationPointsIssued    prometheus.Counter
	ContinuationPointsReleased  prometheus.Counter
	ContinuationPointsExhausted prometheus.Counter
	ReferencesEmitted           prometheus.Histogram
}

// NewCollector builds a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	c := &Collector{
		ContinuationPointsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "browse",
			Name:      "continuation_points_issued_total",
			Help:      "Continuation points created by Browse.",
		}),
		ContinuationPointsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "browse",
			Name:      "continuation_points_released_total",
			Help:      "Continuation points removed by completion or explicit release.",
		}),
		ContinuationPointsExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "browse",
			Name:      "continuation_points_exhausted_total",
			Help:      "Browse calls that failed with BadNoContinuationPoints.",
		}),
		ReferencesEmitted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "browse",
			Name:      "references_emitted",
			Help:      "References returned per Browse/BrowseNext element.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(
		c.ContinuationPointsIssued,
		c.ContinuationPointsReleased,
		c.ContinuationPointsExhausted,
		c.ReferencesEmitted,
	)
	return c
}
