package main

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tracelet/logbridge/pkg/log"
	"github.com/tracelet/logbridge/pkg/logrusbridge"
	"github.com/tracelet/logbridge/pkg/promsink"
	"github.com/tracelet/logbridge/pkg/slogbridge"
)

// pipeline bundles the telemetry wiring of the demo: an SDK logger
// provider exporting to stdout, a tracer provider for live spans, and a
// metrics-counting wrapper every bridge emits through.
type pipeline struct {
	loggerProvider *sdklog.LoggerProvider
	tracerProvider *sdktrace.TracerProvider
	provider       otellog.LoggerProvider
	metrics        *promsink.Metrics
	registry       *prometheus.Registry
}

// newPipeline builds the demo pipeline. A nil writer exports records to
// stdout.
func newPipeline(serviceName string, out io.Writer) (*pipeline, error) {
	var exporterOpts []stdoutlog.Option
	if out != nil {
		exporterOpts = append(exporterOpts, stdoutlog.WithWriter(out))
	}
	exporter, err := stdoutlog.New(exporterOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "create stdout exporter")
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceInstanceID(uuid.NewString()),
	))
	if err != nil {
		return nil, errors.Wrap(err, "build resource")
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
	)

	// No span exporter: spans exist only to give records live correlation.
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithResource(res))

	registry := prometheus.NewRegistry()
	metrics := promsink.NewMetricsWithRegistry(registry)

	return &pipeline{
		loggerProvider: loggerProvider,
		tracerProvider: tracerProvider,
		provider:       promsink.NewProvider(loggerProvider, metrics),
		metrics:        metrics,
		registry:       registry,
	}, nil
}

// shutdown flushes and stops both providers.
func (p *pipeline) shutdown(ctx context.Context, logger log.Logger) {
	if err := p.loggerProvider.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down logger provider", "error", err)
	}
	if err := p.tracerProvider.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down tracer provider", "error", err)
	}
}

// replay sends every scenario step through its bridge. In-span steps run
// inside a fresh span so the emitted record carries trace correlation.
func (p *pipeline) replay(ctx context.Context, sc *Scenario) {
	slogger := slog.New(slogbridge.NewHandler("demo.slog",
		slogbridge.WithLoggerProvider(p.provider),
	))

	logrusLogger := logrus.New()
	logrusLogger.SetOutput(io.Discard)
	logrusLogger.SetLevel(logrus.TraceLevel)
	logrusLogger.AddHook(logrusbridge.NewHook("demo.logrus",
		logrusbridge.WithLoggerProvider(p.provider),
	))

	facade := log.NewOtelLogger("demo.facade", p.provider)

	tracer := p.tracerProvider.Tracer("bridgedemo")

	for _, step := range sc.Steps {
		stepCtx := ctx
		var span trace.Span
		if step.InSpan {
			stepCtx, span = tracer.Start(ctx, sc.Name)
		}

		switch step.Bridge {
		case "slog":
			slogger.Log(stepCtx, slogLevel(step.Level), step.Message, fieldArgs(step.Fields)...)
		case "logrus":
			logrusLogger.WithContext(stepCtx).WithFields(logrus.Fields(step.Fields)).Log(logrusLevel(step.Level), step.Message)
		case "facade":
			lg := facade
			if step.InSpan {
				// SetContextLogger wraps the facade with a SpanLogger,
				// mirroring the entry onto the live span.
				lg = log.FromContext(log.SetContextLogger(stepCtx, facade))
			}
			facadeLog(lg, step.Level, step.Message, fieldArgs(step.Fields))
		}

		if span != nil {
			span.End()
		}
	}
}

// burst emits records concurrently through the slog bridge against a
// discarding provider, so the counters show throughput without flooding
// the exporter output.
func (p *pipeline) burst(ctx context.Context, workers, perWorker int) {
	discard := sdklog.NewLoggerProvider()
	slogger := slog.New(slogbridge.NewHandler("demo.burst",
		slogbridge.WithLoggerProvider(promsink.NewProvider(discard, p.metrics)),
	))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for seq := 0; seq < perWorker; seq++ {
				slogger.InfoContext(ctx, "burst record", "worker", worker, "seq", seq)
			}
		}(i)
	}
	wg.Wait()
}

// dumpCounters logs every counter collected during the run.
func dumpCounters(logger log.Logger, registry *prometheus.Registry) {
	logger = logger.WithName("counters")

	families, err := registry.Gather()
	if err != nil {
		logger.Error("failed to gather metrics", "error", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			keysAndValues := []any{"value", metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				keysAndValues = append(keysAndValues, label.GetName(), label.GetValue())
			}
			logger.Info(family.GetName(), keysAndValues...)
		}
	}
}

// fieldArgs flattens a field map into alternating key-value arguments in
// deterministic key order.
func fieldArgs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

// slogLevel maps a scenario level name to a slog level. Trace sits below
// debug, which slog expresses as an offset.
func slogLevel(level string) slog.Level {
	switch level {
	case "trace":
		return slog.LevelDebug - 4
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// logrusLevel maps a scenario level name to a logrus level.
func logrusLevel(level string) logrus.Level {
	switch level {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// facadeLog dispatches through the facade method matching the level name.
func facadeLog(lg log.Logger, level, msg string, keysAndValues []any) {
	switch level {
	case "trace":
		lg.Trace(msg, keysAndValues...)
	case "debug":
		lg.Debug(msg, keysAndValues...)
	case "info":
		lg.Info(msg, keysAndValues...)
	case "warn":
		lg.Warn(msg, keysAndValues...)
	default:
		lg.Error(msg, keysAndValues...)
	}
}
