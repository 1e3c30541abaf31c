package patlog

import (
	"sync"

	"github.com/patlog/patlog/core"
)

// DefaultLoggerName is the logger the package-level stream
// constructors address.
const DefaultLoggerName = "default"

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Init creates the package-level default manager (if needed) and a
// logger with the given name and delivery mode. Most applications
// call Init once at startup and Shutdown at exit.
func Init(name string, async bool) core.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewManager()
	}
	return defaultManager.CreateLogger(name, async)
}

// Shutdown finalizes the default manager: every logger is flushed,
// closed and unregistered.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		return nil
	}
	err := defaultManager.Finalize()
	defaultManager = nil
	return err
}

// DefaultManager returns the package-level manager, creating it on
// first use.
func DefaultManager() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewManager()
	}
	return defaultManager
}

func defaultRegistry() *Registry {
	return DefaultManager().Registry()
}

// To starts a stream addressed to an explicit logger and category at
// the given level.
func To(logger, category string, level core.Level) *Stream {
	return newStream(defaultRegistry(), logger, category, level, core.LocalTime, 2)
}

// Trace starts a trace-level stream to the default logger.
func Trace(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.TraceLevel, core.LocalTime, 2)
}

// Debug starts a debug-level stream to the default logger.
func Debug(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.DebugLevel, core.LocalTime, 2)
}

// Info starts an info-level stream to the default logger.
func Info(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.InfoLevel, core.LocalTime, 2)
}

// Warn starts a warn-level stream to the default logger.
func Warn(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.WarnLevel, core.LocalTime, 2)
}

// Error starts an error-level stream to the default logger.
func Error(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.ErrorLevel, core.LocalTime, 2)
}

// Fatal starts a fatal-level stream to the default logger. Sending it
// does not terminate the process; patlog leaves exit policy to the
// application.
func Fatal(category string) *Stream {
	return newStream(defaultRegistry(), DefaultLoggerName, category, core.FatalLevel, core.LocalTime, 2)
}
