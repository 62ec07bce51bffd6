package log

import "go.uber.org/zap/zapcore"

// NewLogger creates a logger for the backend named in the configuration.
// The zap backend (the default) builds a self-contained logger from the
// full Config. The ipfs backend hands out the "root" go-log subsystem and
// expects SetupIPFSLogging to have been called at startup; Format, Output
// and the extra writers are then governed by the process-wide go-log
// configuration and are ignored here.
func NewLogger(conf Config, extraWriters ...zapcore.WriteSyncer) Logger {
	if conf.Backend == "ipfs" {
		return NewIPFSLogger("root")
	}
	return NewZapLogger(conf, extraWriters...)
}
