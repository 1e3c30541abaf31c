package patlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/patlog/patlog/core"
	"github.com/patlog/patlog/sinks"
)

func TestAsyncLoggerLevelFiltering(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	mem := sinks.NewMemorySink()
	logger.AddSink(mem)
	logger.SetLevel(core.ErrorLevel)

	logger.Log(event(core.InfoLevel, "info"))
	logger.Log(event(core.ErrorLevel, "error"))
	logger.Flush()

	lines := mem.Lines()
	if len(lines) != 1 || lines[0] != "error" {
		t.Errorf("Delivered %v, want [error]", lines)
	}
}

func TestAsyncLoggerFlushCompleteness(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	mem := sinks.NewMemorySink()
	logger.AddSink(mem)

	const n = 200
	for i := 0; i < n; i++ {
		logger.Log(event(core.InfoLevel, fmt.Sprintf("%d", i)))
	}
	logger.Flush()

	if got := mem.Count(); got != n {
		t.Errorf("%d events visible after Flush, want %d", got, n)
	}
}

func TestAsyncLoggerPerCallerOrder(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	mem := sinks.NewMemorySink()
	logger.AddSink(mem)

	const n = 50
	for i := 0; i < n; i++ {
		logger.Log(event(core.InfoLevel, fmt.Sprintf("%d", i)))
	}
	logger.Flush()

	for i, line := range mem.Lines() {
		if line != fmt.Sprintf("%d", i) {
			t.Fatalf("Line %d = %q, out of order", i, line)
		}
	}
}

func TestAsyncLoggerFlushLevelBarrier(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "app.log")

	sink, err := sinks.NewFileSink(logPath)
	if err != nil {
		t.Fatalf("Failed to create file sink: %v", err)
	}
	sink.SetPattern("%v")

	logger := NewAsyncLogger("app")
	defer logger.Close()
	logger.AddSink(sink)

	// Default flush level is Error: the event must be on disk by the
	// time Log returns, with no separate Flush call.
	logger.Log(event(core.ErrorLevel, "disk failure imminent"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "disk failure imminent") {
		t.Error("Error event not on disk immediately after Log")
	}
}

func TestAsyncLoggerBelowFlushLevelDoesNotBlockOnSinks(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	mem := sinks.NewMemorySink()
	logger.AddSink(mem)

	logger.Log(event(core.InfoLevel, "queued"))
	// The write happens on the worker goroutine; only Flush
	// guarantees visibility.
	logger.Flush()
	if got := mem.Count(); got != 1 {
		t.Errorf("%d events after Flush, want 1", got)
	}
}

func TestAsyncLoggerConcurrentProducers(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	mem := sinks.NewMemorySink()
	logger.AddSink(mem)

	const producers = 4
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Log(event(core.InfoLevel, fmt.Sprintf("p%d-%d", p, i)))
			}
		}(p)
	}
	wg.Wait()
	logger.Flush()

	if got := mem.Count(); got != producers*perProducer {
		t.Errorf("%d events after Flush, want %d", got, producers*perProducer)
	}
}

func TestAsyncLoggerCloseDelivers(t *testing.T) {
	mem := sinks.NewMemorySink()
	logger := NewAsyncLogger("app")
	logger.AddSink(mem)

	for i := 0; i < 25; i++ {
		logger.Log(event(core.InfoLevel, "pending"))
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := mem.Count(); got != 25 {
		t.Errorf("%d events delivered by Close, want 25", got)
	}
}

func TestAsyncLoggerClone(t *testing.T) {
	logger := NewAsyncLogger("app")
	defer logger.Close()
	logger.AddSink(sinks.NewMemorySink())
	logger.SetLevel(core.TraceLevel)
	logger.SetFlushLevel(core.FatalLevel)

	clone := logger.Clone("copy")
	defer clone.Close()

	if clone.Level() != core.TraceLevel || clone.FlushLevel() != core.FatalLevel {
		t.Error("Clone should carry the level configuration")
	}
	if len(clone.Sinks()) != 0 {
		t.Error("Clone should start with an empty sink collection")
	}

	// The clone has its own dispatcher and must deliver independently.
	mem := sinks.NewMemorySink()
	clone.AddSink(mem)
	clone.Log(event(core.InfoLevel, "via clone"))
	clone.Flush()
	if got := mem.Count(); got != 1 {
		t.Errorf("Clone delivered %d events, want 1", got)
	}
}
