package logrusbridge

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
)

// config collects the hook settings applied through options.
type config struct {
	provider         log.LoggerProvider
	version          string
	schemaURL        string
	levels           []logrus.Level
	levelFiltering   bool
	sourceInfo       bool
	correlation      bool
	structuredValues bool
}

func newConfig(opts []Option) config {
	cfg := config{
		levels:           logrus.AllLevels,
		levelFiltering:   true,
		correlation:      true,
		structuredValues: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.provider == nil {
		cfg.provider = global.GetLoggerProvider()
	}
	return cfg
}

// newLogger resolves the sink for the given instrumentation scope name.
func (c config) newLogger(name string) log.Logger {
	var opts []log.LoggerOption
	if c.version != "" {
		opts = append(opts, log.WithInstrumentationVersion(c.version))
	}
	if c.schemaURL != "" {
		opts = append(opts, log.WithSchemaURL(c.schemaURL))
	}
	return c.provider.Logger(name, opts...)
}

// Option configures a Hook.
type Option func(*config)

// WithLoggerProvider sets the provider the hook resolves its sink from.
// When unset, the global provider is captured at construction time.
func WithLoggerProvider(provider log.LoggerProvider) Option {
	return func(c *config) { c.provider = provider }
}

// WithVersion sets the version of the instrumented package on the hook's
// instrumentation scope.
func WithVersion(version string) Option {
	return func(c *config) { c.version = version }
}

// WithSchemaURL sets the schema URL on the hook's instrumentation scope.
func WithSchemaURL(schemaURL string) Option {
	return func(c *config) { c.schemaURL = schemaURL }
}

// WithLevels restricts the logrus levels the hook fires for. The default
// is logrus.AllLevels.
func WithLevels(levels []logrus.Level) Option {
	return func(c *config) { c.levels = levels }
}

// WithLevelFiltering controls whether Fire consults the sink before
// converting an entry. Filtering is on by default; when disabled, every
// entry at the hook's levels is converted and forwarded.
func WithLevelFiltering(enabled bool) Option {
	return func(c *config) { c.levelFiltering = enabled }
}

// WithSourceInfo attaches code.filepath, code.lineno and code.function
// attributes when the host logger reports callers (logrus SetReportCaller).
// Off by default.
func WithSourceInfo(enabled bool) Option {
	return func(c *config) { c.sourceInfo = enabled }
}

// WithCorrelation controls whether entries carrying a context with a valid
// span gain trace_id, span_id and trace_flags attributes. On by default.
func WithCorrelation(enabled bool) Option {
	return func(c *config) { c.correlation = enabled }
}

// WithStructuredValues controls composite field conversion. Structured mode
// (the default) keeps slices and maps as structured log values; ad hoc mode
// degrades composites to JSON or fmt strings while scalars stay native.
func WithStructuredValues(enabled bool) Option {
	return func(c *config) { c.structuredValues = enabled }
}
