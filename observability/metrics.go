// Package observability provides Prometheus instrumentation for the
// kiteboarding calculator.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kiteboarding"

// Rejection reasons used as the "reason" label on RejectionsTotal.
const (
	ReasonAboveSafeLevel  = "above_safe_level"
	ReasonInvalidInput    = "invalid_input"
	ReasonUnknownScenario = "unknown_scenario"
	ReasonUnknownKiteType = "unknown_kite_type"
)

// Metrics holds the Prometheus collectors for calculator operations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CalculationsTotal *prometheus.CounterVec   // labels: operation
	RejectionsTotal   *prometheus.CounterVec   // labels: operation, reason
	KiteSize          *prometheus.HistogramVec // labels: operation
}

// NewMetrics creates the calculator metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.CalculationsTotal, m.RejectionsTotal, m.KiteSize)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CalculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Completed calculations by operation.",
		}, []string{"operation"}),
		RejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Calculations that returned an error, by operation and reason.",
		}, []string{"operation", "reason"}),
		KiteSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kite_size_square_meters",
			Help:      "Recommended ideal kite size in square meters.",
			Buckets:   []float64{3, 5, 7, 9, 11, 13, 15, 17, 19, 21},
		}, []string{"operation"}),
	}
}

// ObserveCalculation counts a successful calculation.
func (m *Metrics) ObserveCalculation(operation string) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(operation).Inc()
}

// ObserveKiteSize records a recommended ideal kite size.
func (m *Metrics) ObserveKiteSize(operation string, size float64) {
	if m == nil {
		return
	}
	m.KiteSize.WithLabelValues(operation).Observe(size)
}

// ObserveRejection counts a failed calculation.
func (m *Metrics) ObserveRejection(operation, reason string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(operation, reason).Inc()
}
