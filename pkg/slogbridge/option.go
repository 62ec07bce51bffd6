package slogbridge

import (
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
)

// config collects the handler settings applied through options.
type config struct {
	provider       log.LoggerProvider
	version        string
	schemaURL      string
	levelFiltering bool
	sourceInfo     bool
	correlation    bool
}

func newConfig(opts []Option) config {
	cfg := config{
		levelFiltering: true,
		correlation:    true,
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

// Option configures a Handler.
type Option func(*config)

// WithLoggerProvider sets the provider the handler resolves its sink from.
// When unset, the global provider is captured at construction time.
func WithLoggerProvider(provider log.LoggerProvider) Option {
	return func(c *config) { c.provider = provider }
}

// WithVersion sets the version of the instrumented package on the handler's
// instrumentation scope.
func WithVersion(version string) Option {
	return func(c *config) { c.version = version }
}

// WithSchemaURL sets the schema URL on the handler's instrumentation scope.
func WithSchemaURL(schemaURL string) Option {
	return func(c *config) { c.schemaURL = schemaURL }
}

// WithLevelFiltering controls whether Enabled consults the sink. Filtering
// is on by default; when disabled, Enabled always reports true and every
// record is forwarded for the sink to judge.
func WithLevelFiltering(enabled bool) Option {
	return func(c *config) { c.levelFiltering = enabled }
}

// WithSourceInfo attaches code.filepath, code.lineno and code.function
// attributes resolved from the log call site. Off by default; resolving
// source frames costs a runtime lookup per record.
func WithSourceInfo(enabled bool) Option {
	return func(c *config) { c.sourceInfo = enabled }
}

// WithCorrelation controls whether records emitted under a valid span carry
// trace_id, span_id and trace_flags attributes. On by default.
func WithCorrelation(enabled bool) Option {
	return func(c *config) { c.correlation = enabled }
}
