package coinflip

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports flip outcomes.
type Metrics struct {
	Flips   *prometheus.CounterVec
	Batches prometheus.Counter
}

// NewMetrics creates flip metrics registered with reg. A nil registerer
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Flips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asciistats",
			Subsystem: "coinflip",
			Name:      "flips_total",
			Help:      "Coin flips by outcome.",
		}, []string{"outcome"}),
		Batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "asciistats",
			Subsystem: "coinflip",
			Name:      "batches_total",
			Help:      "Flip batches started.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Flips, m.Batches)
	}
	return m
}

// Observe records the outcomes added between prev and next. It is meant to
// be installed with core.Observe.
func (m *Metrics) Observe(prev, next Run) {
	if next.Heads > prev.Heads {
		m.Flips.WithLabelValues("heads").Add(float64(next.Heads - prev.Heads))
	}
	if next.Tails > prev.Tails {
		m.Flips.WithLabelValues("tails").Add(float64(next.Tails - prev.Tails))
	}
	if next.Flipping && (!prev.Flipping || next.FlippingEnd != prev.FlippingEnd) {
		m.Batches.Inc()
	}
}
