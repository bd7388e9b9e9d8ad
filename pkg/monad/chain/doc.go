// Package chain provides a fluent wrapper around monad.Try[T] for building
// synchronous railway-style chains on top of package try.
//
// A Chain carries a context.Context that is handed to every step. A step is
// skipped once the chain holds a failure, and a done context stops the chain
// with a failure carrying ctx.Err().
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/ThenTry/Map: continue on success (To/Convert change the value type)
// - Recover: turn a failure back into a value
// - RepeatUntil/While: loop a step
// - Or/And: pick between chains
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value
package chain
