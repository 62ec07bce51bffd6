// Package otelconv converts arbitrary Go log field values into the
// OpenTelemetry data model.
//
// The package is the shared translation core used by every bridge in this
// repository. It produces two attribute flavors:
//
//   - log.Value / log.KeyValue (go.opentelemetry.io/otel/log) for log
//     records emitted through the Logs Bridge API
//   - attribute.KeyValue (go.opentelemetry.io/otel/attribute) for span
//     events recorded on an active trace span
//
// # Coercion Rules
//
// Value classifies the dynamic type of its argument and maps it onto the
// closed OpenTelemetry value union (string, int64, float64, bool, bytes,
// slice, map). The conversion is total: a value of an unknown type never
// fails and never panics, it degrades to a non-empty string rendering.
// The notable policies are:
//
//   - integer kinds stay integers and float kinds stay floats, so a field
//     holding 5 and a field holding 5.0 remain distinguishable downstream
//   - uint64 values above math.MaxInt64 are rendered as decimal strings
//     instead of being truncated or losing precision in a float
//   - time.Duration becomes its nanosecond count, time.Time an RFC 3339
//     timestamp string
//   - map[string]any and the common slice types convert structurally,
//     preserving nesting; map keys are sorted for deterministic output
//   - errors render via Error(), fmt.Stringer via String(), anything else
//     via fmt.Sprint
//
// # Key/Value Pair Walking
//
// Pairs and SpanAttributes walk variadic key/value lists in emission order,
// the convention used by the Logger facade in pkg/log:
//
//	otelconv.Pairs("user", id, "attempt", 3)
//
// A trailing key without a value is paired with the string "MISSING"; a
// non-string key collapses the remainder of the list under the key
// "invalidKeysAndValues" so malformed call sites still surface in the
// backend instead of being dropped.
//
// # Trace Correlation
//
// Correlation snapshots an active span context into log attributes
// (trace_id, span_id, trace_flags in W3C hex form) so a record can be
// joined with the trace that emitted it. An invalid span context yields
// nil, which callers treat as "no correlation".
package otelconv
