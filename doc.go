// Package patlog is a leveled, pattern-formatted logging library with
// named loggers and synchronous or asynchronous delivery.
//
// Events flow from a Stream (a scoped message accumulator) to a named
// Logger resolved through a Registry. Synchronous loggers write every
// sink on the caller's goroutine under a mutex; asynchronous loggers
// enqueue the write onto a dispatcher whose single worker goroutine
// drains it in FIFO order. Events at or above a logger's flush level
// force the sinks to flush before Log returns, in both modes.
//
// Quick start:
//
//	patlog.Init("app", false)
//	defer patlog.Shutdown()
//
//	patlog.Info("startup").Appendf("listening on %s", addr).Send()
//
// Sinks format events with a pattern string ("%x [%l] %v" by
// default); see package formatter for the token set.
package patlog
