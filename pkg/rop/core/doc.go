// Package core carries execution options through context: the worker count
// and name used to build pools, and the logger used by pools and parallel
// combinators. It does not define business logic.
package core
