package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropchain/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if valid, errMsg := validate(ctx, input.Result()); !valid {
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

// Switch moves a successful Result[In] onto a new track; failures and cancels
// are carried over with their error.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return carry[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return carry[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return carry[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Cancel[Out](err)
		}
		return rop.Fail[Out](err)
	}
	return rop.Success(out)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Result())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

func carry[In, Out any](input rop.Result[In]) rop.Result[Out] {
	if input.IsCancel() {
		return rop.CancelFrom[In, Out](input)
	}
	if input.Err() == nil {
		return rop.Fail[Out](rop.ErrEmptyResult)
	}
	return rop.Fail[Out](input.Err())
}
