// Package core carries worker configuration through a context: how many
// workers a batch dispatch may start and whether inputs left over after a
// cancel are still reported. It holds no business logic of its own.
package core
