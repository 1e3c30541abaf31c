package patlog

import (
	"sort"
	"sync"

	"github.com/patlog/patlog/core"
)

// Registry maps logger names to logger instances. It is an explicit
// object rather than package-level state, so its lifetime is visible:
// create one (usually through a Manager), register loggers, and clear
// it at teardown.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]core.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]core.Logger)}
}

// Register adds a logger under its name, replacing any previous
// registration with that name. Nil loggers are ignored.
func (r *Registry) Register(logger core.Logger) {
	if logger == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[logger.Name()] = logger
}

// Unregister removes the logger with the given name, if any.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loggers, name)
}

// UnregisterAll removes every logger.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]core.Logger)
}

// Get returns the logger registered under name, or nil.
func (r *Registry) Get(name string) core.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers[name]
}

// Names returns the registered logger names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
