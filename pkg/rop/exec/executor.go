package exec

import "errors"

// Executor runs a no-argument unit of work exactly once, eventually.
// Execute returns an error only when the work item is refused.
type Executor interface {
	Execute(work func()) error
}

// HandleProvider is implemented by executors that supply their own
// cancellation handle, for example one whose Yield reschedules the goroutine.
type HandleProvider interface {
	NewHandle() *Handle
}

// Inline runs every work item on the caller's goroutine before returning.
type Inline struct{}

func (Inline) Execute(work func()) error {
	work()
	return nil
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(work func()) error

func (f ExecutorFunc) Execute(work func()) error {
	return f(work)
}

// HandleFor returns a fresh handle for one invocation on e.
func HandleFor(e Executor) *Handle {
	if hp, ok := e.(HandleProvider); ok {
		return hp.NewHandle()
	}
	return NewHandle()
}

// ErrNoSteps is the failure cause reported by a combinator given no steps.
var ErrNoSteps = errors.New("exec: no steps to dispatch")
