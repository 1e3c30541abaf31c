package patlog

import (
	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/dispatch"
)

// AsyncLogger delivers events through a dispatcher: Log enqueues the
// sink writes and returns, and the dispatcher's worker goroutine
// performs them in FIFO order. Events at or above the flush level
// block the caller until the queue is drained and the sinks flushed,
// so errors are on disk before Log returns even in async mode.
type AsyncLogger struct {
	loggerBase
	dispatcher *dispatch.Dispatcher
}

// NewAsyncLogger creates an asynchronous logger with no sinks,
// minimum level Info and flush level Error. Its worker goroutine runs
// until Close.
func NewAsyncLogger(name string) *AsyncLogger {
	l := &AsyncLogger{dispatcher: dispatch.NewDispatcher()}
	l.initLoggerBase(name)
	return l
}

// Log enqueues the event for delivery if it passes the minimum
// level. Below the flush level Log never blocks.
func (l *AsyncLogger) Log(event *core.Event) {
	if !l.level.Enabled(event.Level) {
		return
	}
	l.dispatcher.Dispatch(l.sinks, *event)
	if l.flushLevel.Enabled(event.Level) {
		l.dispatcher.Flush(l.sinks)
	}
}

// Flush drains the pending queue, then flushes every sink. It is a
// full barrier: every event logged before Flush has been written when
// it returns.
func (l *AsyncLogger) Flush() {
	l.dispatcher.Flush(l.sinks)
}

// Clone returns a new asynchronous logger with its own dispatcher,
// the same level configuration and an empty sink collection.
func (l *AsyncLogger) Clone(name string) core.Logger {
	clone := NewAsyncLogger(name)
	clone.SetLevel(l.Level())
	clone.SetFlushLevel(l.FlushLevel())
	return clone
}

// Close drains the queue, stops the worker and closes the sinks, in
// that order. Events logged after Close are not delivered.
func (l *AsyncLogger) Close() error {
	l.dispatcher.Flush(l.sinks)
	l.dispatcher.Close()
	return l.closeSinks()
}
