package patlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/sinks"
)

func TestManagerCreateLoggerIdempotent(t *testing.T) {
	manager := NewManager()

	first := manager.CreateLogger("app", false)
	second := manager.CreateLogger("app", true)

	if first != second {
		t.Error("CreateLogger returned a new logger for an existing name")
	}
	if manager.IsAsync("app") {
		t.Error("Second CreateLogger changed the delivery mode")
	}
}

func TestManagerRegistersLoggers(t *testing.T) {
	manager := NewManager()
	manager.CreateLogger("app", false)

	if manager.Registry().Get("app") == nil {
		t.Error("Created logger not reachable through the registry")
	}
}

func TestManagerIsAsync(t *testing.T) {
	manager := NewManager()
	manager.CreateLogger("s", false)
	manager.CreateLogger("a", true)

	if manager.IsAsync("s") {
		t.Error("IsAsync(s) = true, want false")
	}
	if !manager.IsAsync("a") {
		t.Error("IsAsync(a) = false, want true")
	}
	if manager.IsAsync("unknown") {
		t.Error("IsAsync(unknown) = true, want false")
	}
}

func TestManagerAddFileSinkAndPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	manager := NewManager()
	logger := manager.CreateLogger("app", false)
	logger.SetLevel(core.TraceLevel)
	if err := manager.AddFileSink("app", path); err != nil {
		t.Fatalf("AddFileSink: %v", err)
	}
	manager.SetFilePattern("app", "%l %v")

	logger.Log(event(core.InfoLevel, "hello"))
	logger.Flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimRight(string(data), "\n"); got != "INFO hello" {
		t.Errorf("File content = %q, want %q", got, "INFO hello")
	}
}

func TestManagerAddFileSinkUnknownLogger(t *testing.T) {
	manager := NewManager()
	if err := manager.AddFileSink("ghost", filepath.Join(t.TempDir(), "x.log")); err != nil {
		t.Errorf("AddFileSink on unknown logger returned %v", err)
	}
}

func TestManagerSetConsolePattern(t *testing.T) {
	manager := NewManager()
	logger := manager.CreateLogger("app", false)
	console := sinks.NewConsoleSinkWithWriter(&strings.Builder{})
	logger.AddSink(console)
	logger.AddSink(sinks.NewMemorySink())

	manager.SetConsolePattern("app", "%l: %v")

	if got := console.Pattern(); got != "%l: %v" {
		t.Errorf("Console pattern = %q, want %q", got, "%l: %v")
	}
	// Non-console sinks are untouched.
	if got := logger.Sinks()[1].Pattern(); got != "%v" {
		t.Errorf("Memory sink pattern = %q, want %q", got, "%v")
	}
}

func TestManagerSetLevels(t *testing.T) {
	manager := NewManager()
	logger := manager.CreateLogger("app", false)

	manager.SetLevel("app", core.DebugLevel)
	manager.SetFlushLevel("app", core.WarnLevel)

	if got := logger.Level(); got != core.DebugLevel {
		t.Errorf("Level = %v, want Debug", got)
	}
	if got := logger.FlushLevel(); got != core.WarnLevel {
		t.Errorf("FlushLevel = %v, want Warn", got)
	}

	// Unknown names are a no-op, not a panic.
	manager.SetLevel("ghost", core.ErrorLevel)
	manager.SetFlushLevel("ghost", core.ErrorLevel)
}

func TestManagerFinalize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "final.log")

	manager := NewManager()
	logger := manager.CreateLogger("app", true)
	logger.SetLevel(core.TraceLevel)
	if err := manager.AddFileSink("app", path); err != nil {
		t.Fatalf("AddFileSink: %v", err)
	}
	manager.SetFilePattern("app", "%v")

	logger.Log(event(core.InfoLevel, "queued"))

	if err := manager.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "queued") {
		t.Error("Finalize lost a queued async event")
	}
	if manager.Registry().Get("app") != nil {
		t.Error("Logger still registered after Finalize")
	}
	if manager.GetLogger("app") != nil {
		t.Error("GetLogger returned a closed logger after Finalize")
	}
}

func TestManagerReusableAfterFinalize(t *testing.T) {
	manager := NewManager()
	manager.CreateLogger("app", false)
	if err := manager.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if manager.CreateLogger("app", false) == nil {
		t.Error("CreateLogger failed after Finalize")
	}
}
