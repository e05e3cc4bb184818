package exec

import (
	"sync"
	"sync/atomic"
)

// Handle is the cooperative cancellation token shared by every step of one
// combinator invocation. Cancel only sets a flag; steps decide when to look.
// The zero value is a working handle whose Yield does nothing.
type Handle struct {
	cancelled atomic.Bool
	initOnce  sync.Once
	once      sync.Once
	done      chan struct{}
	yield     func()
}

func (h *Handle) init() {
	h.initOnce.Do(func() {
		if h.done == nil {
			h.done = make(chan struct{})
		}
	})
}

// NewHandle returns a working handle whose Yield does nothing.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// NewHandleWithYield returns a working handle whose Yield calls yield.
func NewHandleWithYield(yield func()) *Handle {
	h := NewHandle()
	h.yield = yield
	return h
}

func (h *Handle) IsWorking() bool {
	return !h.cancelled.Load()
}

func (h *Handle) IsCancelled() bool {
	return h.cancelled.Load()
}

// Cancel marks the invocation cancelled. Safe to call many times.
func (h *Handle) Cancel() {
	h.init()
	h.once.Do(func() {
		h.cancelled.Store(true)
		close(h.done)
	})
}

// Done is closed once Cancel has been called.
func (h *Handle) Done() <-chan struct{} {
	h.init()
	return h.done
}

// Yield gives the executor a chance to run other work.
func (h *Handle) Yield() {
	if h.yield != nil {
		h.yield()
	}
}
