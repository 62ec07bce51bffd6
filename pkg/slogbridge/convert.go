package slogbridge

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/log"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

// convertLevel maps a slog level onto the OpenTelemetry severity range.
// The two scales share spacing, so the mapping is a fixed offset with
// clamping at both ends: LevelInfo (0) lands on SeverityInfo (9) and each
// slog step moves one severity number.
func convertLevel(l slog.Level) log.Severity {
	s := int(l) + int(log.SeverityInfo)
	if s < int(log.SeverityTrace1) {
		s = int(log.SeverityTrace1)
	}
	if s > int(log.SeverityFatal4) {
		s = int(log.SeverityFatal4)
	}
	return log.Severity(s)
}

// convertValue maps a slog value onto the log value union. LogValuer values
// are resolved first; slog caps resolution depth and recovers panics, so the
// conversion stays total.
func convertValue(v slog.Value) log.Value {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return log.BoolValue(v.Bool())
	case slog.KindDuration:
		return log.Int64Value(v.Duration().Nanoseconds())
	case slog.KindFloat64:
		return log.Float64Value(v.Float64())
	case slog.KindInt64:
		return log.Int64Value(v.Int64())
	case slog.KindString:
		return log.StringValue(v.String())
	case slog.KindTime:
		return log.StringValue(v.Time().Format(time.RFC3339Nano))
	case slog.KindUint64:
		return otelconv.Value(v.Uint64())
	case slog.KindGroup:
		group := v.Group()
		kvs := make([]log.KeyValue, 0, len(group))
		for _, a := range group {
			kvs = append(kvs, log.KeyValue{Key: a.Key, Value: convertValue(a.Value)})
		}
		return log.MapValue(kvs...)
	case slog.KindAny:
		return otelconv.Value(v.Any())
	default:
		return log.StringValue(v.String())
	}
}

// appendAttr converts a single slog attribute and appends it under the
// given group prefix, honoring the slog handler contract: zero attributes
// are elided, empty groups are elided and groups with an empty key are
// inlined.
func appendAttr(kvs []log.KeyValue, a slog.Attr, prefix string) []log.KeyValue {
	if a.Equal(slog.Attr{}) {
		return kvs
	}

	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return kvs
		}
		if a.Key == "" {
			for _, ga := range group {
				kvs = appendAttr(kvs, ga, prefix)
			}
			return kvs
		}
	}

	return append(kvs, log.KeyValue{Key: prefix + a.Key, Value: convertValue(a.Value)})
}
