// Package monad defines the three value containers shared by the rest of the
// module: Option[T] (a value or nothing), Try[T] (a value or a captured fault)
// and Either[L, R] (one of two typed alternatives).
//
// Every container is an immutable value with an explicit discriminant, so a
// zero value never hides an ill-defined state:
// - the zero Option is None
// - the zero Try is a Failure carrying ErrUninitialized
// - the zero Either has no side, and branching on it panics with ErrUninitialized
//
// Combinators live in the option, try and either packages; asynchronous
// composition is built on package future.
package monad
