// Package lite provides the parallel combinators without pool management:
// Any/All/AllValues run on one lazily started, process-wide exec.Pool sized
// to the number of CPUs.
//
// Common usage:
// - Any/All/AllValues: mass combinators on the default pool
// - AnyOf/AllOf: the same, bound for chain.Apply
// - Configure/Shutdown: pool options and teardown
//
// For explicit executors and pool sizing, see package mass and exec.
package lite
