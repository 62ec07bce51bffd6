// Package logrusbridge provides a logrus hook that forwards entries to an
// OpenTelemetry log sink.
//
// The hook rides logrus's own dispatch: register it once and every entry at
// the hook's levels is converted into an OpenTelemetry log record and
// emitted, while the host logger keeps formatting and writing its usual
// output. The hook performs no I/O of its own and never returns an error
// from Fire, so a misbehaving telemetry pipeline cannot disrupt the
// application's logging.
//
// # Basic Usage
//
//	logger := logrus.New()
//	logger.AddHook(logrusbridge.NewHook("payments"))
//
//	logger.WithFields(logrus.Fields{
//	    "order_id": orderID,
//	    "amount":   amount,
//	}).Info("payment captured")
//
// By default the hook resolves its sink through the global LoggerProvider.
// Pass an explicit provider to bind a specific SDK:
//
//	hook := logrusbridge.NewHook("payments",
//	    logrusbridge.WithLoggerProvider(provider),
//	    logrusbridge.WithVersion("2.1.0"),
//	)
//
// # Severity Mapping
//
// logrus levels map onto severity numbers as Trace (1), Debug (5),
// Info (9), Warn (13), Error (17), Fatal (21) and Panic (24). The severity
// text carries the logrus level name, so a warning entry reads "warning".
//
// # Field Conversion
//
// Entry fields are emitted in sorted key order, making the conversion of a
// given entry deterministic even though logrus stores fields in a map. In
// the default structured mode composite values keep their shape: slices
// become slice values and maps become nested map values. Passing
// WithStructuredValues(false) switches to ad hoc mode, where scalars stay
// native and composites degrade to JSON strings, falling back to a fmt
// rendering for values that do not marshal.
//
// # Trace Correlation
//
// Entries built with WithContext gain trace_id, span_id and trace_flags
// attributes when the context carries a valid span, and the context travels
// with the emitted record:
//
//	ctx, span := tracer.Start(ctx, "charge")
//	defer span.End()
//	logger.WithContext(ctx).Info("charging card")
//
// Entries without a context, the common case in classic logrus code, are
// emitted against context.Background and simply carry no correlation.
//
// # Level Filtering
//
// Fire consults the sink before converting an entry, so severities the
// sink rejects cost neither conversion nor allocation. Use
// WithLevels to restrict which logrus levels reach the hook at all, and
// WithLevelFiltering(false) to forward unconditionally.
package logrusbridge
