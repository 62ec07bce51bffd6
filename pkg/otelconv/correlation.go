package otelconv

import (
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys carrying the active span identity on emitted records. The
// values use the W3C trace context encodings, lowercase hex without
// separators.
const (
	TraceIDKey    = "trace_id"
	SpanIDKey     = "span_id"
	TraceFlagsKey = "trace_flags"
)

// Correlation renders a span context as record attributes. It returns nil
// when the span context is not valid, so callers can append the result
// unconditionally.
func Correlation(sc trace.SpanContext) []log.KeyValue {
	if !sc.IsValid() {
		return nil
	}

	return []log.KeyValue{
		log.String(TraceIDKey, sc.TraceID().String()),
		log.String(SpanIDKey, sc.SpanID().String()),
		log.String(TraceFlagsKey, sc.TraceFlags().String()),
	}
}
