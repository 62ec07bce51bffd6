package log

import (
	ipfslog "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

var _ Logger = &IPFSLogger{}

// IPFSLogger is a Logger implementation backed by the go-log subsystem
// registry. Each named logger is a go-log subsystem, so per-subsystem
// levels set through go-log's environment variables and config apply.
type IPFSLogger struct {
	lg            *zap.SugaredLogger
	name          string
	keysAndValues []any
}

// IPFSConfig configures the process-wide go-log defaults.
// It supports environment variable configuration with default values.
type IPFSConfig struct {
	Level  Level `env:"IPFS_LOG_LEVEL" env-default:"info"` // debug, info, warn, error, fatal
	Stderr bool  `env:"IPFS_LOG_STDERR" env-default:"true"`
}

// SetupIPFSLogging applies process-wide go-log defaults. Call once at
// startup, before creating IPFSLoggers. An unparsable level falls back to
// info.
func SetupIPFSLogging(conf IPFSConfig) {
	lvl, err := ipfslog.Parse(string(conf.Level))
	if err != nil {
		lvl = ipfslog.LevelInfo
	}

	ipfslog.SetupLogging(ipfslog.Config{
		Level:  lvl,
		Stderr: conf.Stderr,
	})
}

// NewIPFSLogger creates a logger for the given go-log subsystem name.
func NewIPFSLogger(name string) Logger {
	return &IPFSLogger{
		lg:            ipfslog.Logger(name).SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar(),
		name:          name,
		keysAndValues: []any{},
	}
}

// Trace discards the message. go-log has no level below debug.
func (l *IPFSLogger) Trace(_ string, _ ...any) {}

// Debug logs a message at debug level.
func (l *IPFSLogger) Debug(msg string, keysAndValues ...any) {
	l.lg.Debugw(msg, keysAndValues...)
}

// Info logs a message at info level.
func (l *IPFSLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Infow(msg, keysAndValues...)
}

// Warn logs a message at warn level.
func (l *IPFSLogger) Warn(msg string, keysAndValues ...any) {
	l.lg.Warnw(msg, keysAndValues...)
}

// Error logs a message at error level.
func (l *IPFSLogger) Error(msg string, keysAndValues ...any) {
	l.lg.Errorw(msg, keysAndValues...)
}

// Fatal logs a message at fatal level and exits the process.
func (l *IPFSLogger) Fatal(msg string, keysAndValues ...any) {
	l.lg.Fatalw(msg, keysAndValues...)
}

// WithKV returns a new IPFSLogger with the key-value pair added to all
// future log messages.
func (l *IPFSLogger) WithKV(key string, value any) Logger {
	kvs := make([]any, 0, len(l.keysAndValues)+2)
	kvs = append(kvs, l.keysAndValues...)
	kvs = append(kvs, key, value)

	return &IPFSLogger{
		lg:            l.lg.With(key, value),
		name:          l.name,
		keysAndValues: kvs,
	}
}

// GetAllKV returns all key-value pairs that have been added to this logger instance.
func (l *IPFSLogger) GetAllKV() []any {
	return l.keysAndValues
}

// WithName returns a logger for a different go-log subsystem. The
// persistent key-value pairs carry over to the new subsystem.
func (l *IPFSLogger) WithName(name string) Logger {
	return &IPFSLogger{
		lg:            ipfslog.Logger(name).SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar().With(l.keysAndValues...),
		name:          name,
		keysAndValues: l.keysAndValues,
	}
}

// Name returns the current subsystem name of the logger.
func (l *IPFSLogger) Name() string {
	return l.name
}

// AddCallerSkip returns a new IPFSLogger that skips additional stack
// frames when determining the caller.
func (l *IPFSLogger) AddCallerSkip(skip int) Logger {
	return &IPFSLogger{
		lg:            l.lg.WithOptions(zap.AddCallerSkip(skip)),
		name:          l.name,
		keysAndValues: l.keysAndValues,
	}
}
