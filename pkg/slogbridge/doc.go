// Package slogbridge provides a slog.Handler that forwards standard library
// log records to an OpenTelemetry log sink.
//
// The handler is a thin dispatch layer: it converts each slog.Record into an
// OpenTelemetry log record (severity, body, attributes, trace correlation)
// and emits it through the log API. It performs no buffering and no I/O of
// its own; delivery, batching and export belong to the configured
// LoggerProvider.
//
// # Basic Usage
//
// Create a handler bound to an instrumentation scope name and install it as
// the default logger:
//
//	handler := slogbridge.NewHandler("checkout-service")
//	slog.SetDefault(slog.New(handler))
//	slog.Info("order accepted", "order_id", orderID)
//
// By default the handler resolves its sink through the global
// LoggerProvider. Pass an explicit provider to bind a specific SDK:
//
//	handler := slogbridge.NewHandler("checkout-service",
//	    slogbridge.WithLoggerProvider(provider),
//	    slogbridge.WithVersion("1.4.2"),
//	)
//
// # Severity Mapping
//
// slog levels translate to OpenTelemetry severity numbers by a fixed offset:
// LevelDebug maps to Debug (5), LevelInfo to Info (9), LevelWarn to Warn (13)
// and LevelError to Error (17). Custom levels in between land on the
// corresponding intermediate severities, and values outside the range clamp
// to Trace (1) and Fatal4 (24). The severity text carries the slog level
// name, for example "WARN+2".
//
// # Groups and Persistent Attributes
//
// WithAttrs attributes are converted once at derivation time and attached to
// every record the derived handler emits. WithGroup qualifies all subsequent
// attribute keys with a dotted prefix:
//
//	l := slog.New(handler).WithGroup("request")
//	l.Info("handled", "method", "GET") // emitted as request.method
//
// Group-valued attributes inside a record convert structurally to nested map
// values.
//
// # Trace Correlation
//
// When the context passed to a log call carries a valid span, the emitted
// record gains trace_id, span_id and trace_flags attributes and the context
// travels with the record so SDK processors can correlate further:
//
//	ctx, span := tracer.Start(ctx, "operation")
//	defer span.End()
//	slog.InfoContext(ctx, "working") // carries the span identity
//
// # Level Filtering
//
// Enabled consults the sink before a record is assembled, so disabled levels
// cost neither conversion nor allocation. Filtering can be switched off with
// WithLevelFiltering(false), in which case every record is forwarded and the
// sink decides.
package slogbridge
