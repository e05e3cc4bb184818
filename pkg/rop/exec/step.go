package exec

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

// Step is a unit of work consumed by the Any/All combinators. The call form is
// fixed when the step is built: Plain steps never see the handle, WithHandle
// steps receive it as a leading argument.
type Step[In, Out any] interface {
	Invoke(ctx context.Context, h *Handle, in In) rop.Outcome[Out]
	UsesHandle() bool
}

type plainStep[In, Out any] struct {
	f func(ctx context.Context, in In) rop.Outcome[Out]
}

func (s plainStep[In, Out]) Invoke(ctx context.Context, _ *Handle, in In) rop.Outcome[Out] {
	return s.f(ctx, in)
}

func (plainStep[In, Out]) UsesHandle() bool {
	return false
}

type handleStep[In, Out any] struct {
	f func(ctx context.Context, h *Handle, in In) rop.Outcome[Out]
}

func (s handleStep[In, Out]) Invoke(ctx context.Context, h *Handle, in In) rop.Outcome[Out] {
	return s.f(ctx, h, in)
}

func (handleStep[In, Out]) UsesHandle() bool {
	return true
}

// Plain builds a step called as f(ctx, in).
func Plain[In, Out any](f func(ctx context.Context, in In) rop.Outcome[Out]) Step[In, Out] {
	return plainStep[In, Out]{f: f}
}

// WithHandle builds a step called as f(ctx, handle, in).
func WithHandle[In, Out any](f func(ctx context.Context, h *Handle, in In) rop.Outcome[Out]) Step[In, Out] {
	return handleStep[In, Out]{f: f}
}

// MapStep builds a plain step from a function returning a bare value.
func MapStep[In, Out any](f func(ctx context.Context, in In) Out) Step[In, Out] {
	return Plain(func(ctx context.Context, in In) rop.Outcome[Out] {
		return rop.Succeed(f(ctx, in))
	})
}

// TryStep builds a plain step from a function returning (value, error).
func TryStep[In, Out any](f func(ctx context.Context, in In) (Out, error)) Step[In, Out] {
	return Plain(func(ctx context.Context, in In) rop.Outcome[Out] {
		out, err := f(ctx, in)
		if err != nil {
			return rop.FailErr[Out](err)
		}
		return rop.Succeed(out)
	})
}
