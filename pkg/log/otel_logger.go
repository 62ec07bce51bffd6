package log

import (
	"context"
	"os"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

var _ Logger = &OtelLogger{}

// OtelLogger is a Logger implementation that forwards every entry to an
// OpenTelemetry log sink. The logger name becomes the instrumentation
// scope, the level maps to a severity number with the level name as
// severity text, and key-value pairs convert to record attributes.
//
// Entries the sink reports as disabled are dropped before any conversion
// work. Fatal emits the entry and then terminates the process.
type OtelLogger struct {
	provider otellog.LoggerProvider
	sink     otellog.Logger

	name          string
	keysAndValues []any
	attrs         []otellog.KeyValue
	exit          func(int)
}

// NewOtelLogger creates a logger emitting through the instrumentation
// scope name. A nil provider falls back to the global LoggerProvider.
func NewOtelLogger(name string, provider otellog.LoggerProvider) Logger {
	if provider == nil {
		provider = global.GetLoggerProvider()
	}
	return &OtelLogger{
		provider: provider,
		sink:     provider.Logger(name),
		name:     name,
		exit:     os.Exit,
	}
}

// Trace logs a message at trace level.
func (l *OtelLogger) Trace(msg string, keysAndValues ...any) {
	l.emit(LevelTrace, msg, keysAndValues)
}

// Debug logs a message at debug level.
func (l *OtelLogger) Debug(msg string, keysAndValues ...any) {
	l.emit(LevelDebug, msg, keysAndValues)
}

// Info logs a message at info level.
func (l *OtelLogger) Info(msg string, keysAndValues ...any) {
	l.emit(LevelInfo, msg, keysAndValues)
}

// Warn logs a message at warn level.
func (l *OtelLogger) Warn(msg string, keysAndValues ...any) {
	l.emit(LevelWarn, msg, keysAndValues)
}

// Error logs a message at error level.
func (l *OtelLogger) Error(msg string, keysAndValues ...any) {
	l.emit(LevelError, msg, keysAndValues)
}

// Fatal logs a message at fatal level and exits the process. The record is
// emitted before the exit, so a flushing provider shutdown hook still sees
// it.
func (l *OtelLogger) Fatal(msg string, keysAndValues ...any) {
	l.emit(LevelFatal, msg, keysAndValues)
	l.exit(1)
}

func (l *OtelLogger) emit(level Level, msg string, keysAndValues []any) {
	ctx := context.Background()
	severity := toOtelSeverity(level)

	if !l.sink.Enabled(ctx, otellog.EnabledParameters{Severity: severity}) {
		return
	}

	var record otellog.Record
	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetSeverityText(string(level))
	if msg != "" {
		record.SetBody(otellog.StringValue(msg))
	}

	attrs := make([]otellog.KeyValue, 0, len(l.attrs)+len(keysAndValues)/2)
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, otelconv.Pairs(keysAndValues...)...)
	if len(attrs) > 0 {
		record.AddAttributes(attrs...)
	}

	l.sink.Emit(ctx, record)
}

// WithKV returns a new OtelLogger with the key-value pair added to all
// future entries. The pair is converted once, here.
func (l *OtelLogger) WithKV(key string, value any) Logger {
	l2 := *l
	l2.keysAndValues = make([]any, 0, len(l.keysAndValues)+2)
	l2.keysAndValues = append(l2.keysAndValues, l.keysAndValues...)
	l2.keysAndValues = append(l2.keysAndValues, key, value)
	l2.attrs = make([]otellog.KeyValue, 0, len(l.attrs)+1)
	l2.attrs = append(l2.attrs, l.attrs...)
	l2.attrs = append(l2.attrs, otelconv.KeyValue(key, value))
	return &l2
}

// GetAllKV returns all key-value pairs that have been added to this logger instance.
func (l *OtelLogger) GetAllKV() []any {
	return l.keysAndValues
}

// WithName returns a new OtelLogger bound to a derived instrumentation
// scope. Names join the hierarchy separated by dots, matching the zap
// backend's naming.
func (l *OtelLogger) WithName(name string) Logger {
	l2 := *l
	if l.name != "" {
		l2.name = l.name + "." + name
	} else {
		l2.name = name
	}
	l2.sink = l.provider.Logger(l2.name)
	return &l2
}

// Name returns the current name of the logger.
func (l *OtelLogger) Name() string {
	return l.name
}

// AddCallerSkip returns the logger unchanged. Call site attribution is a
// sink concern for this backend.
func (l *OtelLogger) AddCallerSkip(int) Logger {
	return l
}

func toOtelSeverity(level Level) otellog.Severity {
	switch level {
	case LevelTrace:
		return otellog.SeverityTrace
	case LevelDebug:
		return otellog.SeverityDebug
	case LevelInfo:
		return otellog.SeverityInfo
	case LevelWarn:
		return otellog.SeverityWarn
	case LevelError:
		return otellog.SeverityError
	case LevelFatal:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityInfo
	}
}
