package chain

import "context"

// Handler is the work a node performs when a dispatch reaches it.
type Handler[A, R any] interface {
	Handle(ctx context.Context, args A) Step[A, R]
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[A, R any] func(ctx context.Context, args A) Step[A, R]

func (f HandlerFunc[A, R]) Handle(ctx context.Context, args A) Step[A, R] {
	return f(ctx, args)
}

type stepKind uint8

const (
	stepUnset stepKind = iota
	stepFinish
	stepForward
	stepReject
)

// Step is a handler's verdict on its input. The zero Step is not a valid
// verdict and aborts the dispatch with ErrNoStep.
type Step[A, R any] struct {
	kind  stepKind
	value R
	args  A
	err   error
}

// Finish accepts the input and ends the dispatch with value.
func Finish[A, R any](value R) Step[A, R] {
	return Step[A, R]{kind: stepFinish, value: value}
}

// Forward passes args, possibly transformed, to the next linked node.
func Forward[A, R any](args A) Step[A, R] {
	return Step[A, R]{kind: stepForward, args: args}
}

// Reject refuses the input. The dispatch ends as Aborted.
func Reject[A, R any](err error) Step[A, R] {
	return Step[A, R]{kind: stepReject, err: err}
}
