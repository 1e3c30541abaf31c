package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/patlog/patlog/selflog"
)

// Worker owns the single background goroutine that executes tasks
// from one queue. Lifecycle: Stopped --Start--> Running --Stop-->
// Stopped (goroutine joined). Flush is valid in either state.
type Worker struct {
	queue   *Queue
	mu      sync.Mutex
	running atomic.Bool
	done    chan struct{}
}

// NewWorker binds a worker to a queue without starting it.
func NewWorker(queue *Queue) *Worker {
	return &Worker{queue: queue}
}

// Start launches the background goroutine. Calling Start on a running
// worker is a no-op.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running.Load() {
		return
	}
	done := make(chan struct{})
	w.done = done
	w.running.Store(true)
	go w.run(done)
}

// Stop signals the goroutine, wakes it with a no-op task, and waits
// for it to exit. Safe to call from any goroutine, on a worker that
// was never started, and more than once. Stop does not drain the
// queue; call Flush first if queued tasks must run.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running.Load() {
		return
	}
	w.running.Store(false)
	w.queue.Push(func() {})
	<-w.done
	w.done = nil
}

// Running reports whether the background goroutine is live.
func (w *Worker) Running() bool {
	return w.running.Load()
}

// Flush executes queued tasks until the queue is empty and, while the
// worker is running, additionally waits for a fence task so that
// every task enqueued before Flush has finished executing when it
// returns. In the stopped state residual tasks run on the calling
// goroutine.
func (w *Worker) Flush() {
	w.drain()

	w.mu.Lock()
	done := w.done
	running := w.running.Load()
	w.mu.Unlock()
	if !running {
		return
	}

	fence := make(chan struct{})
	w.queue.Push(func() { close(fence) })
	select {
	case <-fence:
	case <-done:
		// Worker stopped underneath us; run what's left here,
		// including the fence.
		w.drain()
	}
}

func (w *Worker) drain() {
	for {
		task, ok := w.queue.TryPop()
		if !ok {
			return
		}
		w.execute(task)
	}
}

func (w *Worker) run(done chan struct{}) {
	defer close(done)
	for w.running.Load() {
		for _, task := range w.queue.Drain(0) {
			w.execute(task)
		}
	}
}

// execute runs one task, containing panics so a failing sink cannot
// kill the worker and silently stop all future delivery.
func (w *Worker) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[worker] task panic: %v", r)
			}
		}
	}()
	if task != nil {
		task()
	}
}
