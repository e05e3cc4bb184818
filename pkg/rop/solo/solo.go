package solo

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

func Succeed[T any](input T) rop.Outcome[T] {
	return rop.Succeed(input)
}

func Fail[T any](msg string) rop.Outcome[T] {
	return rop.Fail[T](msg)
}

// Then is the sequence operator: a failed input is passed on re-typed and
// onSuccess is not called; otherwise onSuccess receives the payload.
func Then[In, Out any](ctx context.Context,
	input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) rop.Outcome[Out]) rop.Outcome[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	return onSuccess(ctx, input.MustValue())
}

// Map is Then for steps returning a bare value.
func Map[In, Out any](ctx context.Context,
	input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Outcome[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Succeed(onSuccess(ctx, input.MustValue()))
}

// Try is Then for steps returning (value, error); an error becomes the failure.
func Try[In, Out any](ctx context.Context,
	input rop.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Outcome[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.MustValue())
	if err != nil {
		return rop.FailErr[Out](err)
	}
	return rop.Succeed(out)
}

// Check is Then for steps returning a Status: Valid keeps the input.
func Check[T any](ctx context.Context,
	input rop.Outcome[T],
	check func(ctx context.Context, r T) rop.Status) rop.Outcome[T] {

	if input.IsFailure() {
		return input
	}
	if st := check(ctx, input.MustValue()); !st.IsValid() {
		return rop.FailStatus[T](st)
	}
	return input
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Outcome[T] {

	return Check(ctx, input, func(ctx context.Context, r T) rop.Status {
		if valid, errMsg := validate(ctx, r); !valid {
			return rop.Invalid(errMsg)
		}
		return rop.Valid
	})
}

func Tee[T any](ctx context.Context,
	input rop.Outcome[T],
	onSuccess func(ctx context.Context, r T)) rop.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.MustValue())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, st rop.Status)) rop.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.MustValue())
	} else {
		onFailure(ctx, input.Status())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, st rop.Status) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.MustValue())
	}
	return onFailure(ctx, input.Status())
}
