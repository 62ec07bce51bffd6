package logrusbridge

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

// Hook is a logrus hook that forwards entries to an OpenTelemetry log sink.
// Register it on a logrus logger and every entry at the hook's levels is
// converted and emitted; the host logger's own formatting and output are
// untouched.
//
// Example usage:
//
//	logger := logrus.New()
//	logger.AddHook(logrusbridge.NewHook("payments",
//	    logrusbridge.WithLoggerProvider(provider),
//	))
//	logger.WithField("order_id", id).Info("payment captured")
type Hook struct {
	logger log.Logger

	levels           []logrus.Level
	levelFiltering   bool
	sourceInfo       bool
	correlation      bool
	structuredValues bool
}

var _ logrus.Hook = (*Hook)(nil)

// NewHook returns a Hook emitting through the instrumentation scope name.
// The sink is resolved from the configured LoggerProvider, or from the
// global provider when none is given.
func NewHook(name string, opts ...Option) *Hook {
	cfg := newConfig(opts)
	return &Hook{
		logger:           cfg.newLogger(name),
		levels:           cfg.levels,
		levelFiltering:   cfg.levelFiltering,
		sourceInfo:       cfg.sourceInfo,
		correlation:      cfg.correlation,
		structuredValues: cfg.structuredValues,
	}
}

// Levels returns the logrus levels this hook fires for.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire converts the entry and emits it. The entry message becomes the
// record body (an empty message leaves the body empty), the level maps to
// severity number and text, and fields are emitted in sorted key order so
// repeated entries convert deterministically. Fire never returns an error;
// a telemetry bridge must not disrupt the logger hosting it.
func (h *Hook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if h.levelFiltering {
		param := log.EnabledParameters{Severity: convertLevel(entry.Level)}
		if !h.logger.Enabled(ctx, param) {
			return nil
		}
	}

	var record log.Record
	if !entry.Time.IsZero() {
		record.SetTimestamp(entry.Time)
	}
	record.SetSeverity(convertLevel(entry.Level))
	record.SetSeverityText(entry.Level.String())
	if entry.Message != "" {
		record.SetBody(log.StringValue(entry.Message))
	}

	n := len(entry.Data)
	if h.sourceInfo {
		n += 3
	}
	if h.correlation {
		n += 3
	}
	attrs := make([]log.KeyValue, 0, n)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, log.KeyValue{Key: k, Value: convertValue(entry.Data[k], h.structuredValues)})
	}

	if h.sourceInfo && entry.Caller != nil {
		attrs = append(attrs,
			log.String(string(semconv.CodeFilepathKey), entry.Caller.File),
			log.Int64(string(semconv.CodeLineNumberKey), int64(entry.Caller.Line)),
			log.String(string(semconv.CodeFunctionKey), entry.Caller.Function),
		)
	}
	if h.correlation {
		attrs = append(attrs, otelconv.Correlation(trace.SpanContextFromContext(ctx))...)
	}
	if len(attrs) > 0 {
		record.AddAttributes(attrs...)
	}

	h.logger.Emit(ctx, record)
	return nil
}
