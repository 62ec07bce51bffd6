package promsink

import (
	"context"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.opentelemetry.io/otel/log/global"
)

var _ log.LoggerProvider = (*Provider)(nil)

// Provider wraps a LoggerProvider so every logger it hands out counts
// emitted records and severity checks. The wrapped provider keeps full
// control over the records themselves.
type Provider struct {
	embedded.LoggerProvider

	inner   log.LoggerProvider
	metrics *Metrics
}

// NewProvider wraps the given provider. A nil inner provider falls back to
// the global LoggerProvider. A nil metrics registers fresh metrics on the
// default registerer.
func NewProvider(inner log.LoggerProvider, metrics *Metrics) *Provider {
	if inner == nil {
		inner = global.GetLoggerProvider()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &Provider{
		inner:   inner,
		metrics: metrics,
	}
}

// Logger returns an instrumented logger for the given instrumentation
// scope. The scope name becomes the metric label.
func (p *Provider) Logger(name string, opts ...log.LoggerOption) log.Logger {
	return Instrument(p.inner.Logger(name, opts...), p.metrics, name)
}

// Instrument wraps a single sink so its records and severity checks are
// counted under the given scope label. A nil metrics registers fresh
// metrics on the default registerer.
func Instrument(l log.Logger, metrics *Metrics, scope string) log.Logger {
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &sinkLogger{
		inner:   l,
		scope:   scope,
		metrics: metrics,
	}
}

var _ log.Logger = (*sinkLogger)(nil)

// sinkLogger is the per-scope decorator handed out by Provider.
type sinkLogger struct {
	embedded.Logger

	inner   log.Logger
	scope   string
	metrics *Metrics
}

// Emit counts the record and forwards it unchanged.
func (l *sinkLogger) Emit(ctx context.Context, r log.Record) {
	l.metrics.RecordsEmitted.WithLabelValues(l.scope, r.Severity().String()).Inc()
	l.inner.Emit(ctx, r)
}

// Enabled answers with the wrapped sink's decision and counts it.
func (l *sinkLogger) Enabled(ctx context.Context, param log.EnabledParameters) bool {
	enabled := l.inner.Enabled(ctx, param)

	decision := "allowed"
	if !enabled {
		decision = "denied"
	}
	l.metrics.EnabledChecks.WithLabelValues(l.scope, decision).Inc()

	return enabled
}
