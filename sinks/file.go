package sinks

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/formatter"
	"github.com/patlog/patlog/selflog"
)

// DefaultFilePattern is the pattern file sinks start with.
const DefaultFilePattern = "%x [%l] [%!] %v"

// fileBufferSize is the size of the write buffer in front of the log
// file.
const fileBufferSize = 4096

// FileSink writes formatted log events to a file through a buffered
// writer. Write failures never propagate to the caller; they are
// reported through selflog.
type FileSink struct {
	mu         sync.Mutex
	pattern    string
	path       string
	appendMode bool
	file       *os.File
	w          *bufio.Writer
	isOpen     bool
}

// NewFileSink creates a file sink appending to path, creating parent
// directories as needed.
func NewFileSink(path string) (*FileSink, error) {
	return NewFileSinkWithOptions(path, true)
}

// NewFileSinkWithOptions creates a file sink for path. With
// appendMode false an existing file is truncated.
func NewFileSinkWithOptions(path string, appendMode bool) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("sinks: no log file specified")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sinks: create log directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("sinks: open log file: %w", err)
	}

	return &FileSink{
		pattern:    DefaultFilePattern,
		path:       path,
		appendMode: appendMode,
		file:       file,
		w:          bufio.NewWriterSize(file, fileBufferSize),
		isOpen:     true,
	}, nil
}

// Write formats the event and appends one line to the file.
func (fs *FileSink) Write(event *core.Event) {
	line := formatter.Format(event, fs.Pattern())

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.isOpen {
		return
	}
	if _, err := fs.w.WriteString(line + "\n"); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed: %v (path=%s)", err, fs.path)
		}
	}
}

// Flush writes out the buffer and syncs the file to stable storage.
func (fs *FileSink) Flush() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.flushLocked()
}

// Close flushes and closes the file. Writes after Close are dropped.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.isOpen {
		return nil
	}
	fs.isOpen = false
	if err := fs.w.Flush(); err != nil {
		return fmt.Errorf("sinks: flush log file: %w", err)
	}
	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("sinks: sync log file: %w", err)
	}
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("sinks: close log file: %w", err)
	}
	return nil
}

// Pattern returns the sink's format pattern.
func (fs *FileSink) Pattern() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.pattern
}

// SetPattern replaces the sink's format pattern.
func (fs *FileSink) SetPattern(pattern string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.pattern = pattern
}

// Path returns the log file path.
func (fs *FileSink) Path() string {
	return fs.path
}

// Append reports whether the sink opened its file in append mode.
func (fs *FileSink) Append() bool {
	return fs.appendMode
}

// Clone opens a new sink on the same path in append mode, carrying
// the pattern over. If the file cannot be reopened the clone is a
// closed sink that drops writes.
func (fs *FileSink) Clone() core.Sink {
	clone, err := NewFileSinkWithOptions(fs.path, true)
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] clone failed: %v (path=%s)", err, fs.path)
		}
		return &FileSink{pattern: fs.Pattern(), path: fs.path}
	}
	clone.SetPattern(fs.Pattern())
	return clone
}

func (fs *FileSink) flushLocked() {
	if !fs.isOpen {
		return
	}
	if err := fs.w.Flush(); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] flush failed: %v (path=%s)", err, fs.path)
		}
		return
	}
	if err := fs.file.Sync(); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] sync failed: %v (path=%s)", err, fs.path)
		}
	}
}
