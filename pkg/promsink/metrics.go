package promsink

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for instrumented log sinks.
type Metrics struct {
	// RecordsEmitted counts log records forwarded to the wrapped sink,
	// partitioned by instrumentation scope and severity text.
	RecordsEmitted *prometheus.CounterVec

	// EnabledChecks counts severity checks answered by the wrapped sink,
	// partitioned by instrumentation scope and decision.
	EnabledChecks *prometheus.CounterVec
}

// NewMetrics initializes and registers Prometheus metrics
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers Prometheus metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RecordsEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logbridge_records_emitted_total",
				Help: "The total number of log records forwarded to the wrapped sink",
			},
			[]string{"scope", "severity"},
		),
		EnabledChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logbridge_enabled_checks_total",
				Help: "The total number of severity checks answered by the wrapped sink",
			},
			[]string{"scope", "decision"},
		),
	}
}
