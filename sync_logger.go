package patlog

import (
	"sync"

	"github.com/patlog/patlog/core"
)

// SyncLogger delivers events on the caller's goroutine. A mutex
// serializes concurrent Log calls, so a sink never sees interleaved
// fragments of two messages.
type SyncLogger struct {
	loggerBase
	mu sync.Mutex
}

// NewSyncLogger creates a synchronous logger with no sinks, minimum
// level Info and flush level Error.
func NewSyncLogger(name string) *SyncLogger {
	l := &SyncLogger{}
	l.initLoggerBase(name)
	return l
}

// Log writes the event to every sink in order if it passes the
// minimum level, then flushes every sink if it also reaches the flush
// level. Log returns after all sink I/O has completed.
func (l *SyncLogger) Log(event *core.Event) {
	if !l.level.Enabled(event.Level) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, sink := range l.sinks {
		sink.Write(event)
	}
	if l.flushLevel.Enabled(event.Level) {
		for _, sink := range l.sinks {
			sink.Flush()
		}
	}
}

// Flush flushes every sink.
func (l *SyncLogger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, sink := range l.sinks {
		sink.Flush()
	}
}

// Clone returns a new synchronous logger carrying the same level
// configuration and an empty sink collection.
func (l *SyncLogger) Clone(name string) core.Logger {
	clone := NewSyncLogger(name)
	clone.SetLevel(l.Level())
	clone.SetFlushLevel(l.FlushLevel())
	return clone
}

// Close flushes and closes the sinks.
func (l *SyncLogger) Close() error {
	l.Flush()
	return l.closeSinks()
}
