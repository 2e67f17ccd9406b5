package swipe

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Queue runs the tasks of one row strictly one after another.
// Post from inside a running task appends and returns; the task runs once the
// current one finishes, so handling for a row is never reentrant.
type Queue struct {
	mu       sync.Mutex
	pending  []func()
	draining atomic.Bool
	logger   *slog.Logger
}

// NewQueue creates an empty queue
func NewQueue(logger *slog.Logger) *Queue {
	return &Queue{logger: logger}
}

// Post enqueues fn and drains the queue unless a drain is already running
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	if !q.draining.CompareAndSwap(false, true) {
		return
	}
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining.Store(false)
			q.mu.Unlock()
			return
		}
		next := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.run(next)
	}
}

// Draining reports whether a task is currently running
func (q *Queue) Draining() bool {
	return q.draining.Load()
}

func (q *Queue) run(fn func()) {
	defer func() {
		if r := recover(); r != nil && q.logger != nil {
			q.logger.Error("swipe task panicked", "panic", r)
		}
	}()
	fn()
}
