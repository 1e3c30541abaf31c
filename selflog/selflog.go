// Package selflog provides internal diagnostic output for patlog.
//
// Logging must never fail back into the application, so internal
// errors (a sink write failing, a queued task panicking) are normally
// discarded. When selflog is enabled those conditions are reported
// through a minimal side channel that does not re-enter the logging
// pipeline.
//
// Enable output to stderr:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Set the PATLOG_SELFLOG environment variable to "stderr", "stdout"
// or a file path to enable on startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]
)

// Enable activates self-logging to the provided writer. The writer
// must be safe for concurrent use or wrapped with Sync.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging through a callback.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// IsEnabled reports whether self-logging is active. Check it before
// building an expensive message:
//
//	if selflog.IsEnabled() {
//		selflog.Printf("[worker] task panic: %v", r)
//	}
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// Printf reports an internal diagnostic message. The format string
// should name the component in square brackets, e.g.
// "[file] write failed: %v".
func Printf(format string, args ...any) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if w != nil {
		fmt.Fprintln(*w, line)
	} else {
		(*fn)(line)
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer so that concurrent Printf calls do not
// interleave. Use it when enabling file output.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	switch dest := os.Getenv("PATLOG_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			Enable(Sync(f))
		}
	}
}
