// Package future is the asynchronous primitive the algebra packages compose
// over. A Future is a goroutine's result, an already known value, or the
// readable side of a Promise. The package does not schedule work: Go starts
// exactly one goroutine per call, and Ready starts none.
//
// Key operations:
// - Go/Ready/FromChan/NewPromise: create a Future
// - Await/AwaitContext: wait for the value
// - Then/ThenAsync/Flatten: continue once a Future resolves
// - Chan/Done: bridge back to channels and select loops
package future
