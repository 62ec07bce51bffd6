package log

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

var _ SpanEventRecorder = &OtelSpanEventRecorder{}

// OtelSpanEventRecorder is a SpanEventRecorder implementation that records
// events to an OpenTelemetry span. It converts log messages and their
// associated key-value pairs into span events and attributes.
type OtelSpanEventRecorder struct {
	span trace.Span
}

// NewOtelSpanEventRecorder creates a new OtelSpanEventRecorder that will
// record events to the provided OpenTelemetry span.
func NewOtelSpanEventRecorder(span trace.Span) *OtelSpanEventRecorder {
	return &OtelSpanEventRecorder{
		span: span,
	}
}

// TraceID returns the trace ID of the span as a string.
func (ser *OtelSpanEventRecorder) TraceID() string {
	return ser.span.SpanContext().TraceID().String()
}

// SpanID returns the span ID of the span as a string.
func (ser *OtelSpanEventRecorder) SpanID() string {
	return ser.span.SpanContext().SpanID().String()
}

// RecordEvent records an event to the span with the given name and attributes.
// The keysAndValues are converted to OpenTelemetry attributes.
func (ser *OtelSpanEventRecorder) RecordEvent(name string, keysAndValues ...any) {
	ser.span.AddEvent(name, trace.WithAttributes(otelconv.SpanAttributes(keysAndValues...)...))
}

// RecordError records an error event to the span with the given name and attributes.
// It also sets the span status to error.
func (ser *OtelSpanEventRecorder) RecordError(name string, keysAndValues ...any) {
	ser.span.AddEvent(name, trace.WithAttributes(otelconv.SpanAttributes(keysAndValues...)...))
	ser.span.SetStatus(codes.Error, name)
}
