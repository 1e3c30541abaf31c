package patlog

import (
	"sync"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/sinks"
)

// Manager creates and configures named loggers and owns the registry
// streams resolve them through. Finalize flushes and closes every
// logger it created; skipping it loses queued async events.
type Manager struct {
	mu       sync.Mutex
	registry *Registry
	loggers  map[string]core.Logger
	async    map[string]bool
}

// NewManager creates a manager with an empty registry.
func NewManager() *Manager {
	return &Manager{
		registry: NewRegistry(),
		loggers:  make(map[string]core.Logger),
		async:    make(map[string]bool),
	}
}

// Registry returns the manager's registry.
func (m *Manager) Registry() *Registry { return m.registry }

// CreateLogger creates a logger with the given name and delivery
// mode, registers it, and returns it. If the name already exists the
// existing logger is returned and the async flag is ignored.
func (m *Manager) CreateLogger(name string, async bool) core.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	if logger, ok := m.loggers[name]; ok {
		return logger
	}
	var logger core.Logger
	if async {
		logger = NewAsyncLogger(name)
	} else {
		logger = NewSyncLogger(name)
	}
	m.loggers[name] = logger
	m.async[name] = async
	m.registry.Register(logger)
	return logger
}

// GetLogger returns the named logger, or nil if it was never created.
func (m *Manager) GetLogger(name string) core.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggers[name]
}

// IsAsync reports whether the named logger delivers asynchronously.
// Unknown names report false.
func (m *Manager) IsAsync(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.async[name]
}

// AddConsoleSink appends a console sink to the named logger.
func (m *Manager) AddConsoleSink(name string) {
	if logger := m.GetLogger(name); logger != nil {
		logger.AddSink(sinks.NewConsoleSink())
	}
}

// AddFileSink appends a file sink for path to the named logger.
func (m *Manager) AddFileSink(name, path string) error {
	logger := m.GetLogger(name)
	if logger == nil {
		return nil
	}
	sink, err := sinks.NewFileSink(path)
	if err != nil {
		return err
	}
	logger.AddSink(sink)
	return nil
}

// SetConsolePattern sets the pattern on every console sink of the
// named logger.
func (m *Manager) SetConsolePattern(name, pattern string) {
	logger := m.GetLogger(name)
	if logger == nil {
		return
	}
	for _, sink := range logger.Sinks() {
		if console, ok := sink.(*sinks.ConsoleSink); ok {
			console.SetPattern(pattern)
		}
	}
}

// SetFilePattern sets the pattern on every file sink of the named
// logger.
func (m *Manager) SetFilePattern(name, pattern string) {
	logger := m.GetLogger(name)
	if logger == nil {
		return
	}
	for _, sink := range logger.Sinks() {
		if file, ok := sink.(*sinks.FileSink); ok {
			file.SetPattern(pattern)
		}
	}
}

// SetLevel sets the named logger's minimum level.
func (m *Manager) SetLevel(name string, level core.Level) {
	if logger := m.GetLogger(name); logger != nil {
		logger.SetLevel(level)
	}
}

// SetFlushLevel sets the named logger's flush level.
func (m *Manager) SetFlushLevel(name string, level core.Level) {
	if logger := m.GetLogger(name); logger != nil {
		logger.SetFlushLevel(level)
	}
}

// Finalize flushes and closes every logger, unregisters them all and
// returns the first close error. The manager may be reused afterward.
func (m *Manager) Finalize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var first error
	for name, logger := range m.loggers {
		if err := logger.Close(); err != nil && first == nil {
			first = err
		}
		m.registry.Unregister(name)
	}
	m.loggers = make(map[string]core.Logger)
	m.async = make(map[string]bool)
	return first
}
