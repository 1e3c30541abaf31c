// Package sinks provides the output destinations log events are
// written to: console, file, and an in-memory sink for tests.
package sinks

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/formatter"
)

// DefaultConsolePattern is the pattern console sinks start with.
const DefaultConsolePattern = "%x [%l] %v"

// ConsoleSink writes formatted log events to a console, coloring each
// line by level when the destination is a terminal.
type ConsoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	pattern  string
	theme    *Theme
	useColor bool
}

// NewConsoleSink creates a console sink writing to stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		// colorable interprets ANSI sequences on Windows consoles
		// and passes through everywhere else.
		out:      colorable.NewColorableStdout(),
		pattern:  DefaultConsolePattern,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(os.Stdout),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom
// writer. Color is enabled only if the writer is a terminal.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		out:      w,
		pattern:  DefaultConsolePattern,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
	}
}

// SetTheme replaces the level-to-color mapping.
func (cs *ConsoleSink) SetTheme(theme *Theme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetUseColor forces color output on or off.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// Write formats the event and prints one line.
func (cs *ConsoleSink) Write(event *core.Event) {
	line := formatter.Format(event, cs.Pattern())

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.useColor {
		if color := cs.theme.LevelColor(event.Level); color != "" {
			fmt.Fprintln(cs.out, string(color)+line+string(ColorReset))
			return
		}
	}
	fmt.Fprintln(cs.out, line)
}

// Flush is a no-op; console output is unbuffered.
func (cs *ConsoleSink) Flush() {}

// Pattern returns the sink's format pattern.
func (cs *ConsoleSink) Pattern() string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.pattern
}

// SetPattern replaces the sink's format pattern.
func (cs *ConsoleSink) SetPattern(pattern string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.pattern = pattern
}

// Clone returns a new console sink with the same writer, pattern and
// theme.
func (cs *ConsoleSink) Clone() core.Sink {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return &ConsoleSink{
		out:      cs.out,
		pattern:  cs.pattern,
		theme:    cs.theme,
		useColor: cs.useColor,
	}
}
