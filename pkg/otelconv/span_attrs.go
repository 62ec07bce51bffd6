package otelconv

import (
	"fmt"
	"math"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

// SpanAttributes converts a variadic key/value list into span event
// attributes, following the same walking rules as Pairs: emission order is
// preserved, a trailing key is paired with "MISSING" and a non-string key
// collapses the remainder under "invalidKeysAndValues".
//
// The span attribute union has no bytes or map variant, so composite values
// degrade to string renderings here even when their log counterpart would
// convert structurally.
func SpanAttributes(keysAndValues ...any) []attribute.KeyValue {
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, missingValue)
	}

	attrs := make([]attribute.KeyValue, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			attrs = append(attrs, attribute.String(invalidPairsKey, fmt.Sprint(keysAndValues[i:])))
			break
		}
		attrs = append(attrs, spanAttribute(key, keysAndValues[i+1]))
	}

	return attrs
}

func spanAttribute(key string, v any) attribute.KeyValue {
	switch v := v.(type) {
	case nil:
		return attribute.String(key, nilValue)
	case bool:
		return attribute.Bool(key, v)
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int8, int16, int32, int64, uint8, uint16, uint32:
		return attribute.Int64(key, toInt64(v))
	case uint:
		return uintAttribute(key, uint64(v))
	case uint64:
		return uintAttribute(key, v)
	case float32, float64:
		return attribute.Float64(key, toFloat64(v))
	case []string:
		return attribute.StringSlice(key, v)
	case []int:
		return attribute.IntSlice(key, v)
	case []int64:
		return attribute.Int64Slice(key, v)
	case []float64:
		return attribute.Float64Slice(key, v)
	case []bool:
		return attribute.BoolSlice(key, v)
	case error:
		return attribute.String(key, v.Error())
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}

// uintAttribute keeps values that fit in an int64 numeric and renders
// larger ones as lossless decimal strings.
func uintAttribute(key string, v uint64) attribute.KeyValue {
	if v > math.MaxInt64 {
		return attribute.String(key, strconv.FormatUint(v, 10))
	}
	return attribute.Int64(key, int64(v))
}

// toInt64 widens any integer kind to int64. Non-numeric input yields 0.
func toInt64(value any) int64 {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	default:
		return 0
	}
}

// toFloat64 widens any numeric kind to float64. Non-numeric input yields 0.
func toFloat64(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
