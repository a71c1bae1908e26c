// Package chain implements a chain of responsibility over named nodes.
//
// A Node wraps a Handler and one mutable link to another node. Dispatching
// arguments at a node runs its handler, which either finishes with a value,
// forwards (possibly transformed) arguments to the linked node, or rejects
// the input. The returned Outcome is one of:
// - Done: a handler finished; attributed to that node
// - Aborted: a handler rejected; attributed to the node the dispatch started at
// - EndOfChain: nothing accepted; attributed to the last node run
//
// Key operations:
// - New/MustNew: create an unlinked node
// - Link/LinkAll: connect nodes, cycles allowed
// - Dispatch: follow links from a node
// - Start/Then/Pipe: advance through an explicit node sequence instead of links
// - DispatchAll: dispatch many inputs concurrently
//
// Failures are reported through Outcome values and errors, never panics.
package chain
