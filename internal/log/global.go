package log

import "sync/atomic"

// defaultLogger is installed by the root command once the config file and
// --verbose flag are resolved.
var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger installs the process-wide logger
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// DefaultLogger returns the process-wide logger, lazily creating one with
// default settings when none was installed
func DefaultLogger() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, Default())
	return defaultLogger.Load()
}
