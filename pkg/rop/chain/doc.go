// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous railway chains.
//
// It composes rop.Bind, rop.Map, rop.Try and the inspect helpers behind a
// convenient Chain[T] type, so pipelines read top to bottom without
// handling the Err branch at every step. The env and writer of the wrapped
// Result travel with the chain.
//
// Key operations:
// - Start/FromValue: begin a chain from a rop.Result[T] or value
// - Then/ThenWithEnv: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapWithEnv: transform the successful value (T -> U)
// - Ensure/OnError: run side effects without changing the result
// - Or/And: pick among alternative chains
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Finally: collapse the chain into a final value via handlers
package chain
