// Package solo contains single-value, synchronous ROP primitives that operate
// on Outcome[T]. These functions form the core building blocks for
// status-aware pipelines without goroutines.
//
// Highlights:
// - Then: the sequence operator; short-circuits on failure
// - Map/Try/Check/Validate: normalise bare-value, (value, error) and Status steps
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Any: first positional success wins, all-fail reports the last failure
// - All/All2/All3/AllValues: first positional failure aborts, otherwise
//   payloads are concatenated in step order
package solo
