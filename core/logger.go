package core

// Logger is a named destination for log events. Implementations
// differ in delivery: synchronous loggers write sinks on the caller's
// goroutine, asynchronous ones hand events to a background worker.
type Logger interface {
	// Log delivers an event to every sink if its level passes the
	// logger's minimum level. Events at or above the flush level
	// additionally force a sink flush before Log returns.
	Log(event *Event)

	// Flush forces all sinks to write out buffered events. For
	// asynchronous loggers this drains the pending queue first.
	Flush()

	// AddSink appends a sink. Sinks are written in insertion order.
	// Callers must add sinks before logging concurrently.
	AddSink(sink Sink)

	// Sinks returns the logger's sinks in insertion order.
	Sinks() []Sink

	// Name returns the logger's registry name.
	Name() string

	// SetLevel sets the minimum level for events to be delivered.
	SetLevel(level Level)

	// Level returns the current minimum level.
	Level() Level

	// SetFlushLevel sets the level at and above which every Log call
	// forces an immediate flush.
	SetFlushLevel(level Level)

	// FlushLevel returns the current flush level.
	FlushLevel() Level

	// Clone returns a new logger of the same kind carrying the same
	// level configuration but no sinks.
	Clone(name string) Logger

	// Close flushes pending events and releases sink resources.
	// The logger must not be used after Close.
	Close() error
}
