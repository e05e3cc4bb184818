package mass

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/exec"
)

// Any submits every step to e at once and reads their outcomes in index
// order: the first success by position wins even if a later step finished
// earlier. Each failure observed cancels the shared handle. When all steps
// fail the last one's failure is returned. Any returns only after every step
// has produced its outcome.
func Any[In, Out any](ctx context.Context, e exec.Executor,
	input rop.Outcome[In],
	steps ...exec.Step[In, Out]) rop.Outcome[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	if len(steps) == 0 {
		return rop.FailErr[Out](exec.ErrNoSteps)
	}

	inv := begin(ctx, e, "any", len(steps))
	in := input.MustValue()

	slots := make([]<-chan rop.Outcome[Out], len(steps))
	for i, step := range steps {
		slots[i] = submit(inv, e, i, step, in)
	}

	var result rop.Outcome[Out]
	decided := -1
	for i, slot := range slots {
		if decided >= 0 {
			<-slot
			continue
		}
		result = await(inv, i, slot)
		if result.IsSuccess() {
			decided = i
			inv.cancel(i, "decided")
		}
	}
	if decided < 0 {
		decided = len(slots) - 1
	}

	inv.end(decided, result.Status())
	return result
}

// All submits every step to e at once and reads their outcomes in index
// order. The failure with the lowest index is returned, whatever finished
// first; otherwise the payloads are collected in step order. All returns only
// after every step has produced its outcome.
func All[In, Out any](ctx context.Context, e exec.Executor,
	input rop.Outcome[In],
	steps ...exec.Step[In, Out]) rop.Outcome[[]Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, []Out](input)
	}
	if len(steps) == 0 {
		return rop.FailErr[[]Out](exec.ErrNoSteps)
	}

	inv := begin(ctx, e, "all", len(steps))
	in := input.MustValue()

	slots := make([]<-chan rop.Outcome[Out], len(steps))
	for i, step := range steps {
		slots[i] = submit(inv, e, i, step, in)
	}

	var failure rop.Outcome[Out]
	failed := -1
	values := make([]Out, 0, len(steps))
	for i, slot := range slots {
		r := await(inv, i, slot)
		if failed >= 0 {
			continue
		}
		if r.IsFailure() {
			failure, failed = r, i
			continue
		}
		values = append(values, r.MustValue())
	}

	if failed >= 0 {
		inv.end(failed, failure.Status())
		return rop.FailFrom[Out, []Out](failure)
	}
	inv.end(len(slots)-1, rop.Valid)
	return rop.Succeed(values)
}

// All2 is All for two steps with different payload types.
func All2[In, A, B any](ctx context.Context, e exec.Executor,
	input rop.Outcome[In],
	s1 exec.Step[In, A],
	s2 exec.Step[In, B]) rop.Outcome[rop.Tuple2[A, B]] {

	if input.IsFailure() {
		return rop.FailFrom[In, rop.Tuple2[A, B]](input)
	}

	inv := begin(ctx, e, "all2", 2)
	in := input.MustValue()

	c1 := submit(inv, e, 0, s1, in)
	c2 := submit(inv, e, 1, s2, in)

	r1 := await(inv, 0, c1)
	r2 := await(inv, 1, c2)

	switch {
	case r1.IsFailure():
		inv.end(0, r1.Status())
		return rop.FailFrom[A, rop.Tuple2[A, B]](r1)
	case r2.IsFailure():
		inv.end(1, r2.Status())
		return rop.FailFrom[B, rop.Tuple2[A, B]](r2)
	}
	inv.end(1, rop.Valid)
	return rop.Succeed(rop.Tuple2[A, B]{V1: r1.MustValue(), V2: r2.MustValue()})
}

// All3 is All for three steps with different payload types.
func All3[In, A, B, C any](ctx context.Context, e exec.Executor,
	input rop.Outcome[In],
	s1 exec.Step[In, A],
	s2 exec.Step[In, B],
	s3 exec.Step[In, C]) rop.Outcome[rop.Tuple3[A, B, C]] {

	if input.IsFailure() {
		return rop.FailFrom[In, rop.Tuple3[A, B, C]](input)
	}

	inv := begin(ctx, e, "all3", 3)
	in := input.MustValue()

	c1 := submit(inv, e, 0, s1, in)
	c2 := submit(inv, e, 1, s2, in)
	c3 := submit(inv, e, 2, s3, in)

	r1 := await(inv, 0, c1)
	r2 := await(inv, 1, c2)
	r3 := await(inv, 2, c3)

	switch {
	case r1.IsFailure():
		inv.end(0, r1.Status())
		return rop.FailFrom[A, rop.Tuple3[A, B, C]](r1)
	case r2.IsFailure():
		inv.end(1, r2.Status())
		return rop.FailFrom[B, rop.Tuple3[A, B, C]](r2)
	case r3.IsFailure():
		inv.end(2, r3.Status())
		return rop.FailFrom[C, rop.Tuple3[A, B, C]](r3)
	}
	inv.end(2, rop.Valid)
	return rop.Succeed(rop.Tuple3[A, B, C]{V1: r1.MustValue(), V2: r2.MustValue(), V3: r3.MustValue()})
}

// AllValues is All for multi-value steps; payloads are concatenated and
// flattened in step order.
func AllValues[In any](ctx context.Context, e exec.Executor,
	input rop.Outcome[In],
	steps ...exec.Step[In, rop.Values]) rop.Outcome[rop.Values] {

	r := All(ctx, e, input, steps...)
	if r.IsFailure() {
		return rop.FailFrom[[]rop.Values, rop.Values](r)
	}
	return rop.Succeed(rop.Values{}.Concat(r.MustValue()...).Flatten())
}

// AnyOn binds e and steps into a combinator for chain.Apply.
func AnyOn[In, Out any](e exec.Executor, steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out] {
		return Any(ctx, e, input, steps...)
	}
}

// AllOn binds e and steps into a combinator for chain.Apply.
func AllOn[In, Out any](e exec.Executor, steps ...exec.Step[In, Out]) func(context.Context, rop.Outcome[In]) rop.Outcome[[]Out] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[[]Out] {
		return All(ctx, e, input, steps...)
	}
}

// AllValuesOn binds e and steps into a combinator for chain.Apply.
func AllValuesOn[In any](e exec.Executor, steps ...exec.Step[In, rop.Values]) func(context.Context, rop.Outcome[In]) rop.Outcome[rop.Values] {
	return func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[rop.Values] {
		return AllValues(ctx, e, input, steps...)
	}
}
