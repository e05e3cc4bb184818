package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/exec"
	"github.com/ib-77/ropx/pkg/rop/mass"
)

var (
	mu      sync.Mutex
	pool    *exec.Pool
	options []exec.PoolOption
)

// Configure sets the options used when the default pool is next created.
// It does not affect a pool that is already running.
func Configure(opts ...exec.PoolOption) {
	mu.Lock()
	defer mu.Unlock()
	options = opts
}

// Default returns the process-wide pool, starting it with
// exec.DefaultWorkers workers on first use.
func Default() *exec.Pool {
	mu.Lock()
	defer mu.Unlock()

	if pool == nil || !pool.IsRunning() {
		opts := append([]exec.PoolOption{exec.WithName("lite")}, options...)
		pool = exec.MustNewPool(exec.DefaultWorkers(), opts...)
	}
	return pool
}

// Shutdown closes the default pool after its queued work finishes.
// Like exec.Pool.Close it must not be called from a step running on the pool.
// The next Default call starts a new one.
func Shutdown() {
	mu.Lock()
	p := pool
	pool = nil
	mu.Unlock()

	if p != nil {
		p.Close()
	}
}

func Any[In, Out any](ctx context.Context, input rop.Outcome[In], steps ...exec.Step[In, Out]) rop.Outcome[Out] {
	return mass.Any(ctx, Default(), input, steps...)
}

func All[In, Out any](ctx context.Context, input rop.Outcome[In], steps ...exec.Step[In, Out]) rop.Outcome[[]Out] {
	return mass.All(ctx, Default(), input, steps...)
}

func AllValues[In any](ctx context.Context, input rop.Outcome[In], steps ...exec.Step[In, rop.Values]) rop.Outcome[rop.Values] {
	return mass.AllValues(ctx, Default(), input, steps...)
}

// AnyOf binds steps to the default pool for chain.Apply.
func AnyOf[In, Out any](steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out] {
		return Any(ctx, input, steps...)
	}
}

// AllOf binds steps to the default pool for chain.Apply.
func AllOf[In, Out any](steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[[]Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[[]Out] {
		return All(ctx, input, steps...)
	}
}
