package future

import "github.com/ib-77/monad/pkg/monad"

// Promise is the writable side of a Future, for values produced by code that
// already runs on its own goroutine (callbacks, channel readers, tests).
type Promise[T any] struct {
	s *state[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{s: newState[T]()}
}

// Resolve sets the value. Only the first call has an effect; it reports
// whether this call was the one that resolved the promise.
func (p *Promise[T]) Resolve(v T) bool {
	return p.s.resolve(v, nil)
}

// Reject completes the promise with a fault that Await re-raises as a panic.
func (p *Promise[T]) Reject(fault error) bool {
	if monad.IsNil(fault) {
		fault = monad.ErrNilFault
	}
	return p.s.resolve(*new(T), fault)
}

func (p *Promise[T]) Future() Future[T] {
	return Future[T]{s: p.s}
}
