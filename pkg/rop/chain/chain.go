package chain

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNodeName = errors.New("node name must not be empty")
	ErrNilHandler    = errors.New("node handler must not be nil")
)

// Node is a named participant in a chain. It holds a single outgoing link
// that may be changed at any time; the chain never owns the nodes it links.
type Node[A, R any] struct {
	name    string
	handler Handler[A, R]
	next    atomic.Pointer[Node[A, R]]
	opts    options
}

// New creates an unlinked node.
func New[A, R any](name string, handler Handler[A, R], opts ...Option) (*Node[A, R], error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	n := &Node[A, R]{name: name, handler: handler}
	for _, opt := range opts {
		if err := opt(&n.opts); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MustNew is New for package-level chains; it panics on error.
func MustNew[A, R any](name string, handler Handler[A, R], opts ...Option) *Node[A, R] {
	n, err := New(name, handler, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node[A, R]) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Link points n at next and returns next, so links read left to right:
// a.Link(b).Link(c).
func (n *Node[A, R]) Link(next *Node[A, R]) *Node[A, R] {
	n.next.Store(next)
	return next
}

func (n *Node[A, R]) Unlink() {
	n.next.Store(nil)
}

// Next returns the linked node, or ErrInvalidChain when n is unlinked.
func (n *Node[A, R]) Next() (*Node[A, R], error) {
	next := n.next.Load()
	if next == nil {
		return nil, ErrInvalidChain
	}
	return next, nil
}

// Link sets from's link to to and returns to.
func Link[A, R any](from, to *Node[A, R]) *Node[A, R] {
	return from.Link(to)
}

// LinkAll links every node to the one after it and returns the last node.
func LinkAll[A, R any](nodes ...*Node[A, R]) *Node[A, R] {
	if len(nodes) == 0 {
		return nil
	}
	for i := 1; i < len(nodes); i++ {
		nodes[i-1].Link(nodes[i])
	}
	return nodes[len(nodes)-1]
}

// Dispatch runs n's handler with args and follows links while handlers
// forward. A dispatch stops when a handler finishes (Done at that node),
// rejects (Aborted at n) or when there is no unvisited node left to forward
// to (EndOfChain at the last node run). Every node runs at most once per
// dispatch, so cyclic links always terminate.
func (n *Node[A, R]) Dispatch(ctx context.Context, args A) Outcome[A, R] {
	started := time.Now()
	out := n.dispatch(ctx, uuid.New(), args)
	out.duration = time.Since(started)
	n.opts.report(n.name, out.view())
	return out
}

func (n *Node[A, R]) dispatch(ctx context.Context, id uuid.UUID, args A) Outcome[A, R] {
	visited := make(map[*Node[A, R]]struct{})
	current := n

	for {
		visited[current] = struct{}{}
		n.opts.debug("chain: handling", "dispatch_id", id.String(), "origin", n.name, "node", current.name)

		step := current.handler.Handle(ctx, args)
		switch step.kind {
		case stepFinish:
			return finished(id, current, step.value)
		case stepReject:
			return aborted(id, n, step.err)
		case stepUnset:
			return aborted(id, n, ErrNoStep)
		}

		next := current.next.Load()
		if next == nil {
			return exhausted(id, current)
		}
		if _, seen := visited[next]; seen {
			return exhausted(id, current)
		}
		current, args = next, step.args
	}
}

type outcomeView struct {
	id       uuid.UUID
	state    State
	node     string
	duration time.Duration
	err      error
}

func (o Outcome[A, R]) view() outcomeView {
	return outcomeView{id: o.id, state: o.state, node: o.node.Name(), duration: o.duration, err: o.cause}
}
