package chain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cursor is a dispatch advanced by hand. Each Then runs exactly the node it
// is given, ignoring links, until some handler finishes or rejects.
type Cursor[A, R any] struct {
	ctx     context.Context
	id      uuid.UUID
	started time.Time
	origin  *Node[A, R]
	last    *Node[A, R]
	args    A
	pending bool
	outcome Outcome[A, R]
}

// Start runs node's handler with args and returns a cursor positioned on it.
func Start[A, R any](ctx context.Context, node *Node[A, R], args A) *Cursor[A, R] {
	c := &Cursor[A, R]{
		ctx:     ctx,
		id:      uuid.New(),
		started: time.Now(),
		origin:  node,
		args:    args,
		pending: true,
	}
	c.run(node)
	return c
}

// Then runs node if no handler has finished or rejected yet.
func (c *Cursor[A, R]) Then(node *Node[A, R]) *Cursor[A, R] {
	if !c.pending {
		return c
	}
	next := *c
	next.run(node)
	return &next
}

func (c *Cursor[A, R]) run(node *Node[A, R]) {
	c.origin.opts.debug("chain: handling", "dispatch_id", c.id.String(), "origin", c.origin.name, "node", node.name)

	step := node.handler.Handle(c.ctx, c.args)
	c.last = node
	switch step.kind {
	case stepFinish:
		c.settle(finished(c.id, node, step.value))
	case stepReject:
		c.settle(aborted(c.id, c.origin, step.err))
	case stepUnset:
		c.settle(aborted(c.id, c.origin, ErrNoStep))
	default:
		c.args = step.args
	}
}

func (c *Cursor[A, R]) settle(out Outcome[A, R]) {
	out.duration = time.Since(c.started)
	c.outcome = out
	c.pending = false
	c.origin.opts.report(c.origin.name, out.view())
}

// Outcome is the terminal outcome. A cursor whose handlers all forwarded
// ends as EndOfChain at the last node run; asking for its outcome closes it,
// so a later Then is a no-op.
func (c *Cursor[A, R]) Outcome() Outcome[A, R] {
	if c.pending {
		c.settle(exhausted(c.id, c.last))
	}
	return c.outcome
}

// Node is the node the terminal outcome is attributed to.
func (c *Cursor[A, R]) Node() *Node[A, R] {
	return c.Outcome().Node()
}

// Pipe runs args through nodes in the given order, as Start followed by Then
// for every remaining node. With no nodes the outcome is Unstarted.
func Pipe[A, R any](ctx context.Context, args A, nodes ...*Node[A, R]) Outcome[A, R] {
	if len(nodes) == 0 {
		return Outcome[A, R]{}
	}
	c := Start(ctx, nodes[0], args)
	for _, n := range nodes[1:] {
		c = c.Then(n)
	}
	return c.Outcome()
}
