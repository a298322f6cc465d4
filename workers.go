package cleave

import (
	"runtime"
	"sync/atomic"
)

// Workers is a slot pool bounding how many extra goroutines a terminal
// operation may fork. The fork-join step takes a slot with TryAcquire
// before forking; when no slot is free, both halves run inline on the
// calling goroutine, degrading gracefully to sequential execution under
// load.
type Workers struct {
	ch       chan struct{}
	cap      int
	acquired atomic.Int64
}

// NewWorkers creates a pool with n slots.
// Panics if n <= 0.
func NewWorkers(n int) *Workers {
	if n <= 0 {
		panic("cleave: NewWorkers requires n > 0")
	}
	return &Workers{
		ch:  make(chan struct{}, n),
		cap: n,
	}
}

// TryAcquire attempts to take a slot without blocking.
// Returns true if acquired, false otherwise.
func (w *Workers) TryAcquire() bool {
	select {
	case w.ch <- struct{}{}:
		w.acquired.Add(1)
		return true
	default:
		return false
	}
}

// Release returns a slot. Panics if more slots are released than acquired.
func (w *Workers) Release() {
	if w.acquired.Add(-1) < 0 {
		w.acquired.Add(1) // undo
		panic("cleave: Workers.Release called without matching TryAcquire")
	}
	<-w.ch
}

// Available returns the number of free slots.
// The value may be stale in concurrent contexts.
func (w *Workers) Available() int {
	return w.cap - len(w.ch)
}

// newWorkers sizes a pool from the configured goroutine limit. The
// calling goroutine counts toward the limit, so a limit of n leaves n-1
// fork slots; a limit of 1 means fully inline execution (nil pool).
func newWorkers(limit int) *Workers {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if limit == 1 {
		return nil
	}
	return NewWorkers(limit - 1)
}
