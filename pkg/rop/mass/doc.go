// Package mass runs the Any/All combinators concurrently on an exec.Executor.
// Every step is submitted up front; outcomes are consumed in index order, so
// positional priority is the same as in package solo. Steps built with
// exec.WithHandle can poll the shared handle to stop early once their result
// can no longer matter.
package mass
