package slogbridge

import (
	"context"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracelet/logbridge/pkg/otelconv"
)

// Handler is a slog.Handler that forwards records to an OpenTelemetry log
// sink. A Handler is immutable; WithAttrs and WithGroup return derived
// handlers and never mutate the receiver, so a single Handler is safe for
// concurrent use by any number of loggers and goroutines.
//
// Example usage:
//
//	handler := slogbridge.NewHandler("billing",
//	    slogbridge.WithLoggerProvider(provider),
//	)
//	logger := slog.New(handler)
//	logger.Info("invoice issued", "invoice_id", id)
type Handler struct {
	logger log.Logger

	levelFiltering bool
	sourceInfo     bool
	correlation    bool

	// attrs holds WithAttrs state, converted once at derivation time.
	attrs []log.KeyValue
	// prefix qualifies record attribute keys with the open group path.
	prefix string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a Handler emitting through the instrumentation scope
// name. The sink is resolved from the configured LoggerProvider, or from
// the global provider when none is given.
func NewHandler(name string, opts ...Option) *Handler {
	cfg := newConfig(opts)
	return &Handler{
		logger:         cfg.newLogger(name),
		levelFiltering: cfg.levelFiltering,
		sourceInfo:     cfg.sourceInfo,
		correlation:    cfg.correlation,
	}
}

// NewLogger returns a slog.Logger backed by a new Handler. It is shorthand
// for slog.New(NewHandler(name, opts...)).
func NewLogger(name string, opts ...Option) *slog.Logger {
	return slog.New(NewHandler(name, opts...))
}

// Enabled reports whether the sink accepts records at the given level. The
// check runs before any record is assembled, so disabled levels cost
// neither conversion nor allocation. When level filtering is switched off
// every level reports true and the sink decides per record.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if !h.levelFiltering {
		return true
	}
	param := log.EnabledParameters{Severity: convertLevel(level)}
	return h.logger.Enabled(ctx, param)
}

// Handle converts the record and emits it. The slog message becomes the
// record body (an empty message leaves the body empty), the level maps to
// severity number and text, and attributes accumulate in order: persistent
// WithAttrs state, then record attributes under the open group prefix,
// then source location and trace correlation when enabled.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var record log.Record

	if !r.Time.IsZero() {
		record.SetTimestamp(r.Time)
	}
	record.SetSeverity(convertLevel(r.Level))
	record.SetSeverityText(r.Level.String())
	if r.Message != "" {
		record.SetBody(log.StringValue(r.Message))
	}

	n := len(h.attrs) + r.NumAttrs()
	if h.sourceInfo {
		n += 3
	}
	if h.correlation {
		n += 3
	}
	attrs := make([]log.KeyValue, 0, n)
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, a, h.prefix)
		return true
	})

	if h.sourceInfo && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		attrs = append(attrs,
			log.String(string(semconv.CodeFilepathKey), f.File),
			log.Int64(string(semconv.CodeLineNumberKey), int64(f.Line)),
			log.String(string(semconv.CodeFunctionKey), f.Function),
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

// WithAttrs returns a handler whose emitted records carry the given
// attributes. The attributes are converted here, once, under the currently
// open group prefix.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := *h
	h2.attrs = make([]log.KeyValue, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, a, h.prefix)
	}
	return &h2
}

// WithGroup returns a handler that qualifies all subsequent attribute keys
// with name. Nested groups concatenate with a dot. An empty name returns
// the receiver unchanged, per the slog handler contract.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}
