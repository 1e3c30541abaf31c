package dispatch

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patlog/patlog/selflog"
)

func TestWorkerExecutesTasks(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)
	w.Start()
	defer w.Stop()

	var count atomic.Int64
	for i := 0; i < 50; i++ {
		q.Push(func() { count.Add(1) })
	}

	w.Flush()
	if got := count.Load(); got != 50 {
		t.Errorf("Executed %d tasks, want 50", got)
	}
}

func TestWorkerStopIdempotent(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)

	// Stop on a worker that was never started must not hang.
	w.Stop()

	w.Start()
	w.Stop()
	w.Stop()

	if w.Running() {
		t.Error("Worker should not be running after Stop")
	}
}

func TestWorkerDoubleStart(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)
	w.Start()
	w.Start() // no second goroutine
	defer w.Stop()

	var count atomic.Int64
	for i := 0; i < 10; i++ {
		q.Push(func() { count.Add(1) })
	}
	w.Flush()
	if got := count.Load(); got != 10 {
		t.Errorf("Executed %d tasks, want 10", got)
	}
}

func TestWorkerFlushWhenStopped(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)

	var count atomic.Int64
	for i := 0; i < 5; i++ {
		q.Push(func() { count.Add(1) })
	}

	// Residual tasks run on the calling goroutine.
	w.Flush()
	if got := count.Load(); got != 5 {
		t.Errorf("Executed %d residual tasks, want 5", got)
	}
	if !q.Empty() {
		t.Error("Queue should be empty after Flush")
	}
}

func TestWorkerStopDoesNotDrain(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)

	q.Push(func() {})
	w.Stop()
	if q.Empty() {
		t.Error("Stop on a never-started worker should leave the queue alone")
	}
}

func TestWorkerFlushIsBarrier(t *testing.T) {
	q := NewQueue()
	w := NewWorker(q)
	w.Start()
	defer w.Stop()

	const producers = 4
	const perProducer = 100

	var count atomic.Int64
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(func() {
					time.Sleep(time.Millisecond)
					count.Add(1)
				})
			}
		}()
	}
	wg.Wait()

	w.Flush()
	if got := count.Load(); got != producers*perProducer {
		t.Errorf("Counter = %d after Flush, want %d", got, producers*perProducer)
	}
	if !q.Empty() {
		t.Error("Queue should report empty after Flush")
	}
}

func TestWorkerSurvivesPanickingTask(t *testing.T) {
	var buf bytes.Buffer
	selflog.Enable(selflog.Sync(&buf))
	defer selflog.Disable()

	q := NewQueue()
	w := NewWorker(q)
	w.Start()
	defer w.Stop()

	var count atomic.Int64
	q.Push(func() { panic("sink exploded") })
	q.Push(func() { count.Add(1) })

	w.Flush()
	if got := count.Load(); got != 1 {
		t.Errorf("Task after panic did not run (count=%d)", got)
	}
	if !strings.Contains(buf.String(), "task panic") {
		t.Errorf("Panic not reported through selflog: %q", buf.String())
	}
}
