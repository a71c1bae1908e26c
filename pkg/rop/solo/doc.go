// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. Chain outcomes convert to Result[T], so these helpers are how
// a dispatch continues into ordinary railway code.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate: turn an invalid success into a failure
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
