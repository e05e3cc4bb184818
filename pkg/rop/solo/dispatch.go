package solo

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/exec"
)

// Any invokes steps in index order and returns the first success; later steps
// are not invoked. When every step fails the last failure is returned.
// Steps run one after another, so the handle they receive is never cancelled.
func Any[In, Out any](ctx context.Context,
	input rop.Outcome[In],
	steps ...exec.Step[In, Out]) rop.Outcome[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	if len(steps) == 0 {
		return rop.FailErr[Out](exec.ErrNoSteps)
	}

	h := exec.NewHandle()
	in := input.MustValue()

	var last rop.Outcome[Out]
	for _, step := range steps {
		last = step.Invoke(ctx, h, in)
		if last.IsSuccess() {
			return last
		}
	}
	return last
}

// All invokes steps in index order; the first failure aborts the rest and is
// returned. Otherwise the payloads are collected in step order.
func All[In, Out any](ctx context.Context,
	input rop.Outcome[In],
	steps ...exec.Step[In, Out]) rop.Outcome[[]Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, []Out](input)
	}
	if len(steps) == 0 {
		return rop.FailErr[[]Out](exec.ErrNoSteps)
	}

	h := exec.NewHandle()
	in := input.MustValue()

	values := make([]Out, 0, len(steps))
	for _, step := range steps {
		r := step.Invoke(ctx, h, in)
		if r.IsFailure() {
			return rop.FailFrom[Out, []Out](r)
		}
		values = append(values, r.MustValue())
	}
	return rop.Succeed(values)
}

// All2 is All for two steps with different payload types.
func All2[In, A, B any](ctx context.Context,
	input rop.Outcome[In],
	s1 exec.Step[In, A],
	s2 exec.Step[In, B]) rop.Outcome[rop.Tuple2[A, B]] {

	if input.IsFailure() {
		return rop.FailFrom[In, rop.Tuple2[A, B]](input)
	}

	h := exec.NewHandle()
	in := input.MustValue()

	r1 := s1.Invoke(ctx, h, in)
	if r1.IsFailure() {
		return rop.FailFrom[A, rop.Tuple2[A, B]](r1)
	}
	r2 := s2.Invoke(ctx, h, in)
	if r2.IsFailure() {
		return rop.FailFrom[B, rop.Tuple2[A, B]](r2)
	}
	return rop.Succeed(rop.Tuple2[A, B]{V1: r1.MustValue(), V2: r2.MustValue()})
}

// All3 is All for three steps with different payload types.
func All3[In, A, B, C any](ctx context.Context,
	input rop.Outcome[In],
	s1 exec.Step[In, A],
	s2 exec.Step[In, B],
	s3 exec.Step[In, C]) rop.Outcome[rop.Tuple3[A, B, C]] {

	if input.IsFailure() {
		return rop.FailFrom[In, rop.Tuple3[A, B, C]](input)
	}

	h := exec.NewHandle()
	in := input.MustValue()

	r1 := s1.Invoke(ctx, h, in)
	if r1.IsFailure() {
		return rop.FailFrom[A, rop.Tuple3[A, B, C]](r1)
	}
	r2 := s2.Invoke(ctx, h, in)
	if r2.IsFailure() {
		return rop.FailFrom[B, rop.Tuple3[A, B, C]](r2)
	}
	r3 := s3.Invoke(ctx, h, in)
	if r3.IsFailure() {
		return rop.FailFrom[C, rop.Tuple3[A, B, C]](r3)
	}
	return rop.Succeed(rop.Tuple3[A, B, C]{V1: r1.MustValue(), V2: r2.MustValue(), V3: r3.MustValue()})
}

// AllValues is All for multi-value steps: successful payloads are
// concatenated and flattened into one Values list.
func AllValues[In any](ctx context.Context,
	input rop.Outcome[In],
	steps ...exec.Step[In, rop.Values]) rop.Outcome[rop.Values] {

	r := All(ctx, input, steps...)
	if r.IsFailure() {
		return rop.FailFrom[[]rop.Values, rop.Values](r)
	}
	return rop.Succeed(rop.Values{}.Concat(r.MustValue()...).Flatten())
}

// AnyOf binds steps into a combinator for chain.Apply.
func AnyOf[In, Out any](steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out] {
		return Any(ctx, input, steps...)
	}
}

// AllOf binds steps into a combinator for chain.Apply.
func AllOf[In, Out any](steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[[]Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[[]Out] {
		return All(ctx, input, steps...)
	}
}
