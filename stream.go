package patlog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patlog/patlog/core"
)

// Stream accumulates a message and delivers it as one log event when
// Send is called. The logger is resolved by name at Send time; if no
// logger is registered under that name the message is silently
// discarded, so a logging call never fails the caller's control flow.
//
// Streams are single-use values for one goroutine:
//
//	patlog.NewStream(reg, "app", "net", core.WarnLevel, core.LocalTime).
//		Append("retrying in ", delay).
//		Send()
type Stream struct {
	registry *Registry
	logger   string
	event    core.Event
	buf      strings.Builder
	sent     bool
}

// NewStream creates a stream addressed to the named logger in the
// given registry. The call site's file, function and line are
// captured here.
func NewStream(registry *Registry, logger, category string, level core.Level, kind core.TimestampKind) *Stream {
	return newStream(registry, logger, category, level, kind, 2)
}

func newStream(registry *Registry, logger, category string, level core.Level, kind core.TimestampKind, skip int) *Stream {
	s := &Stream{
		registry: registry,
		logger:   logger,
		event: core.Event{
			Category:  category,
			Level:     level,
			Timestamp: kind,
		},
	}
	s.event.File, s.event.Function, s.event.Line = caller(skip)
	return s
}

// Append writes the operands to the message buffer in fmt.Sprint
// style and returns the stream for chaining.
func (s *Stream) Append(args ...any) *Stream {
	fmt.Fprint(&s.buf, args...)
	return s
}

// Appendf writes a formatted string to the message buffer and returns
// the stream for chaining.
func (s *Stream) Appendf(format string, args ...any) *Stream {
	fmt.Fprintf(&s.buf, format, args...)
	return s
}

// Send resolves the logger and delivers the accumulated message if
// the stream's level passes the logger's current level. A second Send
// is a no-op.
func (s *Stream) Send() {
	if s.sent {
		return
	}
	s.sent = true

	if s.registry == nil {
		return
	}
	logger := s.registry.Get(s.logger)
	if logger == nil {
		return
	}
	if s.event.Level < logger.Level() {
		return
	}
	s.event.Message = s.buf.String()
	logger.Log(&s.event)
}

// caller returns the file base name, bare function name and line of
// the frame skip levels above it.
func caller(skip int) (file, function string, line int) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", "", 0
	}
	file = filepath.Base(file)
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}
	return file, function, line
}
