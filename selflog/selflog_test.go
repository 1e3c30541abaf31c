package selflog

import (
	"strings"
	"sync"
	"testing"
)

func TestDisabledByDefault(t *testing.T) {
	Disable()
	if IsEnabled() {
		t.Error("IsEnabled() = true after Disable")
	}
	// Printf on a disabled selflog is a no-op, not a panic.
	Printf("[test] dropped %d", 1)
}

func TestEnableWriter(t *testing.T) {
	defer Disable()

	var buf strings.Builder
	Enable(&buf)

	if !IsEnabled() {
		t.Fatal("IsEnabled() = false after Enable")
	}
	Printf("[test] value=%d", 42)

	got := buf.String()
	if !strings.Contains(got, "[test] value=42") {
		t.Errorf("Output = %q, want it to contain the message", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Output line not newline-terminated")
	}
}

func TestEnableFunc(t *testing.T) {
	defer Disable()

	var mu sync.Mutex
	var lines []string
	EnableFunc(func(line string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, line)
	})

	Printf("[test] via callback")

	mu.Lock()
	defer mu.Unlock()
	if len(lines) != 1 || !strings.Contains(lines[0], "[test] via callback") {
		t.Errorf("Callback received %v", lines)
	}
}

func TestEnableNilIgnored(t *testing.T) {
	Disable()
	Enable(nil)
	EnableFunc(nil)
	if IsEnabled() {
		t.Error("Enabling with nil activated selflog")
	}
}

func TestSyncWriterConcurrent(t *testing.T) {
	defer Disable()

	var buf strings.Builder
	var mu sync.Mutex
	Enable(Sync(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(p)
	})))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				Printf("[test] concurrent")
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	got := strings.Count(buf.String(), "\n")
	if got != 200 {
		t.Errorf("Got %d lines, want 200", got)
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
