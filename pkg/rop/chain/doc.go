// Package chain provides a fluent wrapper around Outcome[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Chaining is left-associative: each call consumes the previous outcome and,
// once a failure occurs, no later step runs.
//
// Key operations:
// - Start/FromValue/Pass: begin a chain from an Outcome[T] or initial values
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Apply: plug in an Any/All combinator from solo or mass
// - Check/Ensure: validate or run side effects without changing the value
// - Finally: collapse the chain into a final value via handlers
package chain
