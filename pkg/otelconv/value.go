package otelconv

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/log"
)

const (
	// missingValue is paired with a trailing key that has no value.
	missingValue = "MISSING"
	// invalidPairsKey collects the remainder of a key/value list once a
	// non-string key is encountered.
	invalidPairsKey = "invalidKeysAndValues"
	// nilValue is the rendering used for untyped and typed nil values.
	nilValue = "<nil>"
)

// Value coerces an arbitrary Go value into the OpenTelemetry log value
// union. The conversion is total: unknown types degrade to a non-empty
// string rendering and no input can cause a panic.
func Value(v any) log.Value {
	switch v := v.(type) {
	case nil:
		return log.StringValue(nilValue)
	case bool:
		return log.BoolValue(v)
	case string:
		return log.StringValue(v)
	case int:
		return log.Int64Value(int64(v))
	case int8:
		return log.Int64Value(int64(v))
	case int16:
		return log.Int64Value(int64(v))
	case int32:
		return log.Int64Value(int64(v))
	case int64:
		return log.Int64Value(v)
	case uint:
		return uint64Value(uint64(v))
	case uint8:
		return log.Int64Value(int64(v))
	case uint16:
		return log.Int64Value(int64(v))
	case uint32:
		return log.Int64Value(int64(v))
	case uint64:
		return uint64Value(v)
	case float32:
		return log.Float64Value(float64(v))
	case float64:
		return log.Float64Value(v)
	case time.Duration:
		return log.Int64Value(v.Nanoseconds())
	case time.Time:
		return log.StringValue(v.Format(time.RFC3339Nano))
	case []byte:
		return log.BytesValue(v)
	case []string:
		vals := make([]log.Value, 0, len(v))
		for _, s := range v {
			vals = append(vals, log.StringValue(s))
		}
		return log.SliceValue(vals...)
	case []int:
		vals := make([]log.Value, 0, len(v))
		for _, n := range v {
			vals = append(vals, log.Int64Value(int64(n)))
		}
		return log.SliceValue(vals...)
	case []int64:
		vals := make([]log.Value, 0, len(v))
		for _, n := range v {
			vals = append(vals, log.Int64Value(n))
		}
		return log.SliceValue(vals...)
	case []float64:
		vals := make([]log.Value, 0, len(v))
		for _, f := range v {
			vals = append(vals, log.Float64Value(f))
		}
		return log.SliceValue(vals...)
	case []bool:
		vals := make([]log.Value, 0, len(v))
		for _, b := range v {
			vals = append(vals, log.BoolValue(b))
		}
		return log.SliceValue(vals...)
	case []any:
		vals := make([]log.Value, 0, len(v))
		for _, e := range v {
			vals = append(vals, Value(e))
		}
		return log.SliceValue(vals...)
	case map[string]any:
		return mapValue(v)
	case error:
		return log.StringValue(v.Error())
	case fmt.Stringer:
		return log.StringValue(v.String())
	default:
		return log.StringValue(fmt.Sprint(v))
	}
}

// KeyValue builds a single log attribute from a key and an arbitrary value.
func KeyValue(key string, v any) log.KeyValue {
	return log.KeyValue{Key: key, Value: Value(v)}
}

// Pairs converts a variadic key/value list into log attributes, preserving
// emission order. A trailing key without a value is paired with "MISSING";
// once a non-string key is encountered the remainder of the list is
// rendered under the "invalidKeysAndValues" key.
func Pairs(keysAndValues ...any) []log.KeyValue {
	if len(keysAndValues) == 0 {
		return nil
	}
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, missingValue)
	}

	attrs := make([]log.KeyValue, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			attrs = append(attrs, log.String(invalidPairsKey, fmt.Sprint(keysAndValues[i:])))
			break
		}
		attrs = append(attrs, KeyValue(key, keysAndValues[i+1]))
	}

	return attrs
}

// uint64Value keeps values that fit in an int64 numeric and renders larger
// ones as lossless decimal strings.
func uint64Value(v uint64) log.Value {
	if v > math.MaxInt64 {
		return log.StringValue(strconv.FormatUint(v, 10))
	}
	return log.Int64Value(int64(v))
}

// mapValue converts a generic map into a nested map value. Keys are sorted
// so repeated conversions of the same map produce identical output.
func mapValue(m map[string]any) log.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kvs := make([]log.KeyValue, 0, len(m))
	for _, k := range keys {
		kvs = append(kvs, KeyValue(k, m[k]))
	}
	return log.MapValue(kvs...)
}
