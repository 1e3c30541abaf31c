package core

import "sync/atomic"

// LevelVar holds a Level that can be read and updated from any
// goroutine. Loggers use it for both the minimum level and the flush
// level so that setters are safe while logging is in flight.
type LevelVar struct {
	level atomic.Int32
}

// Level returns the current level.
func (lv *LevelVar) Level() Level {
	return Level(lv.level.Load())
}

// Set updates the level. The change takes effect immediately.
func (lv *LevelVar) Set(level Level) {
	lv.level.Store(int32(level))
}

// Enabled reports whether an event at the given level passes the
// current threshold.
func (lv *LevelVar) Enabled(level Level) bool {
	return level >= lv.Level()
}
