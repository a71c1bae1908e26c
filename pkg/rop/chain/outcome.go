package chain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/ropchain/pkg/rop"
)

var (
	// ErrInvalidChain is returned when a node has no link to follow or an
	// outcome is read before any dispatch produced it.
	ErrInvalidChain = errors.New("invalid chain")
	// ErrAborted marks a dispatch whose handler rejected the input.
	ErrAborted = errors.New("chain aborted")
	// ErrEndOfChain marks a dispatch that no handler accepted.
	ErrEndOfChain = errors.New("end of chain")
	// ErrInvalidArgument is returned when the value of a finished but not
	// done outcome is requested.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoStep is the abort cause when a handler returns the zero Step.
	ErrNoStep = errors.New("handler returned no step")
)

type State uint8

const (
	Unstarted State = iota
	Done
	Aborted
	EndOfChain
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	case EndOfChain:
		return "end_of_chain"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Outcome is the terminal state of one dispatch. The zero Outcome is
// Unstarted.
type Outcome[A, R any] struct {
	id       uuid.UUID
	state    State
	node     *Node[A, R]
	value    R
	cause    error
	duration time.Duration
}

func finished[A, R any](id uuid.UUID, node *Node[A, R], value R) Outcome[A, R] {
	return Outcome[A, R]{id: id, state: Done, node: node, value: value}
}

func aborted[A, R any](id uuid.UUID, origin *Node[A, R], cause error) Outcome[A, R] {
	return Outcome[A, R]{id: id, state: Aborted, node: origin, cause: cause}
}

func exhausted[A, R any](id uuid.UUID, last *Node[A, R]) Outcome[A, R] {
	return Outcome[A, R]{id: id, state: EndOfChain, node: last}
}

func (o Outcome[A, R]) State() State {
	return o.state
}

func (o Outcome[A, R]) IsDone() bool {
	return o.state == Done
}

// Node is the node the outcome is attributed to: the producer for Done, the
// originating node for Aborted and the last node run for EndOfChain.
func (o Outcome[A, R]) Node() *Node[A, R] {
	return o.node
}

// ID identifies the dispatch that produced the outcome.
func (o Outcome[A, R]) ID() uuid.UUID {
	return o.id
}

func (o Outcome[A, R]) Duration() time.Duration {
	return o.duration
}

// Cause is the error a handler rejected with, if any.
func (o Outcome[A, R]) Cause() error {
	return o.cause
}

// Causes splits a cause built with errors.Join into its parts. It is empty
// when there is no cause.
func (o Outcome[A, R]) Causes() []error {
	return rop.GetErrors(o.cause)
}

func (o Outcome[A, R]) Err() error {
	switch o.state {
	case Done:
		return nil
	case Aborted:
		if rop.IsNil(o.cause) {
			return fmt.Errorf("%w at %q", ErrAborted, o.node.Name())
		}
		return fmt.Errorf("%w at %q: %w", ErrAborted, o.node.Name(), o.cause)
	case EndOfChain:
		return fmt.Errorf("%w at %q", ErrEndOfChain, o.node.Name())
	default:
		return ErrInvalidChain
	}
}

// Value returns the payload of a Done outcome.
func (o Outcome[A, R]) Value() (R, error) {
	var zero R
	switch o.state {
	case Done:
		return o.value, nil
	case Unstarted:
		return zero, ErrInvalidChain
	default:
		return zero, fmt.Errorf("%w: %w", ErrInvalidArgument, o.Err())
	}
}

func (o Outcome[A, R]) Tuple() (R, *Node[A, R]) {
	return o.value, o.node
}

// Result converts the outcome to the railway Result. Aborts caused by
// context cancellation become cancels.
func (o Outcome[A, R]) Result() rop.Result[R] {
	switch o.state {
	case Done:
		return rop.Success(o.value)
	case Aborted:
		if rop.IsCancellationError(o.cause) {
			return rop.Cancel[R](o.Err())
		}
	}
	return rop.Fail[R](o.Err())
}

func (o Outcome[A, R]) String() string {
	if o.node == nil {
		return o.state.String()
	}
	return fmt.Sprintf("%s@%s", o.state, o.node.Name())
}
