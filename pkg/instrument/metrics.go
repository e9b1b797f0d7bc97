package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records reduction activity for one instrument.
type Metrics struct {
	Reductions         prometheus.Counter
	DeferredReductions prometheus.Counter
	Propagation        prometheus.Histogram
}

// NewMetrics creates metrics and registers them with reg. A nil registerer
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Reductions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asciistats",
			Subsystem: "instrument",
			Name:      "reductions_total",
			Help:      "Mutators applied to the instrument state.",
		}),
		DeferredReductions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asciistats",
			Subsystem: "instrument",
			Name:      "deferred_reductions_total",
			Help:      "Reductions issued during an in-flight propagation and queued until it finished.",
		}),
		Propagation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "asciistats",
			Subsystem: "instrument",
			Name:      "propagation_seconds",
			Help:      "Time spent propagating one state change through the element tree.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Reductions, m.DeferredReductions, m.Propagation)
	}
	return m
}
