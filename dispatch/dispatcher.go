package dispatch

import "github.com/patlog/patlog/core"

// Dispatcher pairs a queue with its worker and turns "write this
// event to these sinks" into a queued task. The worker starts at
// construction and stops at Close.
//
// The dispatcher does not own the sinks it is handed; the enclosing
// logger does. Dispatch captures the sink slice, so the slice (and the
// sinks behind it) stay reachable until every queued task has run.
type Dispatcher struct {
	queue  *Queue
	worker *Worker
}

// NewDispatcher creates a dispatcher with a running worker.
func NewDispatcher() *Dispatcher {
	queue := NewQueue()
	d := &Dispatcher{
		queue:  queue,
		worker: NewWorker(queue),
	}
	d.worker.Start()
	return d
}

// Dispatch enqueues a task that writes the event to every sink in
// order. The event is captured by value since the originating call
// frame returns before the task runs. Dispatch never blocks.
func (d *Dispatcher) Dispatch(sinks []core.Sink, event core.Event) {
	d.queue.Push(func() {
		for _, sink := range sinks {
			sink.Write(&event)
		}
	})
}

// Flush drains pending dispatch tasks, then flushes every sink in
// order on the calling goroutine. When Flush returns, every event
// dispatched before the call has been written and flushed.
func (d *Dispatcher) Flush(sinks []core.Sink) {
	d.worker.Flush()
	for _, sink := range sinks {
		sink.Flush()
	}
}

// Pending returns the number of queued tasks at the moment of the
// call.
func (d *Dispatcher) Pending() int {
	return d.queue.Len()
}

// Close stops the worker. Tasks still queued at Close do not run;
// call Flush first to guarantee delivery.
func (d *Dispatcher) Close() {
	d.worker.Stop()
}
