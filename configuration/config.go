// Package configuration loads logger setups from JSON files and
// applies them to a patlog Manager, with optional live reload.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/patlog/patlog"
	"github.com/patlog/patlog/core"
)

// Config is the root of a configuration file.
type Config struct {
	Loggers []LoggerConfig `json:"Loggers"`
}

// LoggerConfig describes one named logger.
type LoggerConfig struct {
	// Name is the registry name; empty selects the default logger
	// name.
	Name string `json:"Name"`

	// Sinks is "console", "file" or "both". Empty means console.
	Sinks string `json:"Sinks,omitempty"`

	// FilePath is the log file path; required when Sinks includes
	// file.
	FilePath string `json:"FilePath,omitempty"`

	// ConsolePattern and FilePattern override the sink defaults.
	ConsolePattern string `json:"ConsolePattern,omitempty"`
	FilePattern    string `json:"FilePattern,omitempty"`

	// Level and FlushLevel are level names ("Debug", "WARN", ...).
	// Empty keeps the defaults (Info, Error).
	Level      string `json:"Level,omitempty"`
	FlushLevel string `json:"FlushLevel,omitempty"`

	// Async selects the asynchronous delivery pipeline.
	Async bool `json:"Async,omitempty"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("configuration: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply creates and configures every logger in the config on the
// manager. Existing loggers with the same names keep their sinks;
// only levels and patterns are re-applied to them.
func (c *Config) Apply(manager *patlog.Manager) error {
	for _, lc := range c.Loggers {
		if err := lc.apply(manager); err != nil {
			return err
		}
	}
	return nil
}

func (lc LoggerConfig) apply(manager *patlog.Manager) error {
	name := lc.Name
	if name == "" {
		name = patlog.DefaultLoggerName
	}

	created := manager.GetLogger(name) == nil
	manager.CreateLogger(name, lc.Async)

	if created {
		console, file, err := lc.sinkSelection()
		if err != nil {
			return err
		}
		if console {
			manager.AddConsoleSink(name)
		}
		if file {
			if lc.FilePath == "" {
				return fmt.Errorf("configuration: logger %q: file sink without FilePath", name)
			}
			if err := manager.AddFileSink(name, lc.FilePath); err != nil {
				return err
			}
		}
	}

	if lc.ConsolePattern != "" {
		manager.SetConsolePattern(name, lc.ConsolePattern)
	}
	if lc.FilePattern != "" {
		manager.SetFilePattern(name, lc.FilePattern)
	}
	if lc.Level != "" {
		level, ok := core.ParseLevel(lc.Level)
		if !ok {
			return fmt.Errorf("configuration: logger %q: unknown level %q", name, lc.Level)
		}
		manager.SetLevel(name, level)
	}
	if lc.FlushLevel != "" {
		level, ok := core.ParseLevel(lc.FlushLevel)
		if !ok {
			return fmt.Errorf("configuration: logger %q: unknown flush level %q", name, lc.FlushLevel)
		}
		manager.SetFlushLevel(name, level)
	}
	return nil
}

func (lc LoggerConfig) sinkSelection() (console, file bool, err error) {
	switch strings.ToLower(strings.TrimSpace(lc.Sinks)) {
	case "", "console":
		return true, false, nil
	case "file":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("configuration: unknown sink selection %q", lc.Sinks)
	}
}
