// Package dispatch implements the asynchronous delivery pipeline: a
// thread-safe task queue, the single background worker that drains
// it, and the dispatcher that bridges loggers to sinks.
package dispatch

import "sync"

// Task is a deferred, zero-argument unit of work queued for
// execution by the worker.
type Task func()

// defaultDrainBatch bounds how many tasks Drain removes per lock
// acquisition when the caller doesn't say.
const defaultDrainBatch = 32

// Queue is an unbounded FIFO of tasks shared between any number of
// producers and a single draining consumer. Empty is only a
// point-in-time hint; it is not a synchronization primitive.
type Queue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	tasks []Task
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends a task to the tail and wakes one waiting consumer.
// It never blocks the producer.
func (q *Queue) Push(task Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop blocks until a task is available, then removes and returns the
// head. There is no timeout; shutdown wakes a blocked Pop by pushing
// a no-op task.
func (q *Queue) Pop() Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.tasks) == 0 {
		q.cond.Wait()
	}
	return q.popLocked()
}

// TryPop removes and returns the head without blocking. The second
// return value reports whether a task was available.
func (q *Queue) TryPop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil, false
	}
	return q.popLocked(), true
}

// Drain blocks until at least one task is available, then removes and
// returns up to max tasks in FIFO order within a single critical
// section. max <= 0 selects a default batch size.
func (q *Queue) Drain(max int) []Task {
	if max <= 0 {
		max = defaultDrainBatch
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.tasks) == 0 {
		q.cond.Wait()
	}

	n := len(q.tasks)
	if n > max {
		n = max
	}
	batch := make([]Task, n)
	copy(batch, q.tasks)
	for i := 0; i < n; i++ {
		q.tasks[i] = nil
	}
	q.tasks = q.tasks[n:]
	if len(q.tasks) == 0 {
		q.tasks = nil
	}
	return batch
}

// Empty reports whether the queue held no tasks at the moment of the
// call.
func (q *Queue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks) == 0
}

// Len returns the number of queued tasks at the moment of the call.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) popLocked() Task {
	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	if len(q.tasks) == 0 {
		q.tasks = nil
	}
	return task
}
