package chain

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/ropchain/pkg/rop/core"
)

// DefaultWorkers is used by DispatchAll when ctx carries no worker options.
const DefaultWorkers = 4

// DispatchAll dispatches every input from node on a pool of workers sized by
// core.GetWorkerMaxCount. Outcomes arrive in no particular order and the
// channel closes once all of them are sent, so callers must drain it.
//
// Inputs not yet handed to a worker when ctx is done are skipped, or reported
// as Aborted with ctx.Err() as cause when core.IsProcessRemainingEnabled.
// Handlers that touch shared state must guard it themselves.
func DispatchAll[A, R any](ctx context.Context, node *Node[A, R], inputs []A) <-chan Outcome[A, R] {
	out := make(chan Outcome[A, R])
	in := make(chan A)
	wg := &sync.WaitGroup{}

	workers := core.GetWorkerMaxCount(ctx, DefaultWorkers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for args := range in {
				out <- node.Dispatch(ctx, args)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(in)

		for i, args := range inputs {
			if ctx.Err() != nil {
				skipRemaining(ctx, node, inputs[i:], out)
				return
			}
			select {
			case in <- args:
			case <-ctx.Done():
				skipRemaining(ctx, node, inputs[i:], out)
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func skipRemaining[A, R any](ctx context.Context, node *Node[A, R], rest []A, out chan<- Outcome[A, R]) {
	if !core.IsProcessRemainingEnabled(ctx, false) {
		return
	}
	for range rest {
		res := aborted(uuid.New(), node, ctx.Err())
		node.opts.report(node.name, res.view())
		out <- res
	}
}

// Collect drains ch into a slice.
func Collect[A, R any](ch <-chan Outcome[A, R]) []Outcome[A, R] {
	res := make([]Outcome[A, R], 0)
	for o := range ch {
		res = append(res, o)
	}
	return res
}
