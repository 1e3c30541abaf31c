package sinks

import (
	"sync"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/formatter"
)

// MemorySink stores formatted lines and raw events in memory for
// testing.
type MemorySink struct {
	mu      sync.RWMutex
	pattern string
	lines   []string
	events  []core.Event
	flushes int
}

// NewMemorySink creates a memory sink whose pattern renders the bare
// message.
func NewMemorySink() *MemorySink {
	return &MemorySink{pattern: "%v"}
}

// Write formats the event and records both the line and the event.
func (m *MemorySink) Write(event *core.Event) {
	line := formatter.Format(event, m.Pattern())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
	m.events = append(m.events, *event)
}

// Flush records that a flush happened.
func (m *MemorySink) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
}

// Pattern returns the sink's format pattern.
func (m *MemorySink) Pattern() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pattern
}

// SetPattern replaces the sink's format pattern.
func (m *MemorySink) SetPattern(pattern string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pattern = pattern
}

// Clone returns a fresh, empty memory sink with the same pattern.
func (m *MemorySink) Clone() core.Sink {
	return &MemorySink{pattern: m.Pattern()}
}

// Lines returns a copy of all recorded lines in write order.
func (m *MemorySink) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Events returns a copy of all recorded events in write order.
func (m *MemorySink) Events() []core.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.Event, len(m.events))
	copy(out, m.events)
	return out
}

// Count returns the number of recorded events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// Flushes returns how many times Flush was called.
func (m *MemorySink) Flushes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flushes
}

// Clear removes all recorded lines and events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = m.lines[:0]
	m.events = m.events[:0]
	m.flushes = 0
}
