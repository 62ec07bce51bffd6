// Package promsink instruments OpenTelemetry log sinks with Prometheus metrics.
//
// The package wraps a log.LoggerProvider so that every logger it hands out
// counts the records it forwards and the severity checks it answers. The
// wrapped provider keeps full control over the records themselves; the
// decorator only observes.
//
// # Usage
//
// Wrap the provider before handing it to a bridge:
//
//	metrics := promsink.NewMetrics()
//	provider := promsink.NewProvider(sdkProvider, metrics)
//
//	handler := slogbridge.NewHandler("checkout",
//	    slogbridge.WithLoggerProvider(provider),
//	)
//
// Two counters are exposed:
//
//   - logbridge_records_emitted_total{scope, severity}
//   - logbridge_enabled_checks_total{scope, decision}
//
// The scope label is the instrumentation scope name the bridge requested
// its logger with, so one wrapped provider can serve several bridges and
// still attribute records per component.
//
// # Testing
//
// Pass a private registry to keep tests isolated:
//
//	registry := prometheus.NewRegistry()
//	metrics := promsink.NewMetricsWithRegistry(registry)
package promsink
