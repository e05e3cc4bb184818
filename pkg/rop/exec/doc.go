// Package exec holds the execution side of the combinators: the Executor
// capability, the Inline executor, a fixed-size worker Pool, the per-invocation
// cancellation Handle, and the Plain/WithHandle step variants.
//
// Key constructs:
// - Executor/Inline/ExecutorFunc: "run this work item, eventually"
// - Pool: N worker goroutines over one LIFO queue, with metrics and Stats
// - Handle: cooperative cancellation shared by the steps of one invocation
// - Plain/WithHandle/MapStep/TryStep: step call forms chosen at composition time
package exec
