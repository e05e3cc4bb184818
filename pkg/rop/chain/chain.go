package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Outcome[T]
}

// Start creates a new chain from a rop.Outcome
func Start[T any](ctx context.Context, result rop.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Succeed(value))
}

// Pass creates a new chain from several initial values
func Pass(ctx context.Context, values ...any) *Chain[rop.Values] {
	return Start(ctx, rop.Pass(values...))
}

// Result returns the underlying rop.Outcome
func (c *Chain[T]) Result() rop.Outcome[T] {
	return c.result
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Then(c.ctx, c.result, onSuccess),
	}
}

// Apply chains a combinator that consumes the whole outcome, e.g. one built
// with mass.AnyOn or mass.AllOn
func Apply[T, U any](c *Chain[T], combinator func(context.Context, rop.Outcome[T]) rop.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: combinator(c.ctx, c.result),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Check keeps the value when check returns rop.Valid
func (c *Chain[T]) Check(check func(context.Context, T) rop.Status) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Check(c.ctx, c.result, check),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, rop.Status) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
