package patlog

import "github.com/patlog/patlog/core"

// loggerBase carries the state shared by both logger variants: the
// name, the two level thresholds, and the ordered sink collection.
//
// The sink slice is owned exclusively by the logger. AddSink is not
// synchronized against in-flight Log calls; sinks must be added
// before concurrent logging begins.
type loggerBase struct {
	name       string
	level      core.LevelVar
	flushLevel core.LevelVar
	sinks      []core.Sink
}

func (b *loggerBase) initLoggerBase(name string) {
	b.name = name
	b.level.Set(core.InfoLevel)
	b.flushLevel.Set(core.ErrorLevel)
}

// Name returns the logger's registry name.
func (b *loggerBase) Name() string { return b.name }

// AddSink appends a sink; sinks are written in insertion order.
func (b *loggerBase) AddSink(sink core.Sink) {
	if sink == nil {
		return
	}
	b.sinks = append(b.sinks, sink)
}

// Sinks returns the sink collection in insertion order.
func (b *loggerBase) Sinks() []core.Sink { return b.sinks }

// SetLevel sets the minimum level for delivery.
func (b *loggerBase) SetLevel(level core.Level) { b.level.Set(level) }

// Level returns the current minimum level.
func (b *loggerBase) Level() core.Level { return b.level.Level() }

// SetFlushLevel sets the level at and above which Log forces a flush.
func (b *loggerBase) SetFlushLevel(level core.Level) { b.flushLevel.Set(level) }

// FlushLevel returns the current flush level.
func (b *loggerBase) FlushLevel() core.Level { return b.flushLevel.Level() }

// closeSinks closes every sink that has a Close method, returning the
// first error.
func (b *loggerBase) closeSinks() error {
	var first error
	for _, sink := range b.sinks {
		if closer, ok := sink.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
