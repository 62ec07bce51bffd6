package otelconv_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

// TestSpanAttributes tests the conversion of key/value lists to span event
// attributes. It verifies:
// 1. Empty input handling
// 2. Correct type conversion for the span attribute union
// 3. Handling of odd number of elements (missing values)
// 4. Error handling for non-string keys
// 5. String degradation for kinds the span union cannot carry
func TestSpanAttributes(t *testing.T) {
	tests := []struct {
		name           string
		keysAndValues  []any
		expectedOutput []attribute.KeyValue
	}{
		{
			name:           "empty input",
			keysAndValues:  []any{},
			expectedOutput: []attribute.KeyValue{},
		},
		{
			name:          "even number of elements",
			keysAndValues: []any{"key1", "value1", "key2", 42, "key3", true, "key4", 1.5},
			expectedOutput: []attribute.KeyValue{
				attribute.String("key1", "value1"),
				attribute.Int("key2", 42),
				attribute.Bool("key3", true),
				attribute.Float64("key4", 1.5),
			},
		},
		{
			name:          "odd number of elements",
			keysAndValues: []any{"key1", "value1", "key2"},
			expectedOutput: []attribute.KeyValue{
				attribute.String("key1", "value1"),
				attribute.String("key2", "MISSING"),
			},
		},
		{
			name:          "non-string key",
			keysAndValues: []any{123, "value1", "key2", 42},
			expectedOutput: []attribute.KeyValue{
				attribute.String("invalidKeysAndValues", "[123 value1 key2 42]"),
			},
		},
		{
			name:          "nil and error values",
			keysAndValues: []any{"cause", nil, "err", errors.New("boom")},
			expectedOutput: []attribute.KeyValue{
				attribute.String("cause", "<nil>"),
				attribute.String("err", "boom"),
			},
		},
		{
			name:          "unsigned overflow",
			keysAndValues: []any{"fits", uint64(7), "huge", uint64(math.MaxUint64)},
			expectedOutput: []attribute.KeyValue{
				attribute.Int64("fits", 7),
				attribute.String("huge", "18446744073709551615"),
			},
		},
		{
			name:          "native slices",
			keysAndValues: []any{"tags", []string{"a", "b"}, "codes", []int64{1, 2}},
			expectedOutput: []attribute.KeyValue{
				attribute.StringSlice("tags", []string{"a", "b"}),
				attribute.Int64Slice("codes", []int64{1, 2}),
			},
		},
		{
			name:          "stringer value",
			keysAndValues: []any{"elapsed", 1500 * time.Millisecond},
			expectedOutput: []attribute.KeyValue{
				attribute.String("elapsed", "1.5s"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := otelconv.SpanAttributes(tt.keysAndValues...)
			assert.Equal(t, tt.expectedOutput, result)
		})
	}
}
