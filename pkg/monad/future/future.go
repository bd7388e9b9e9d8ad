package future

import (
	"context"
	"sync"

	"github.com/ib-77/monad/pkg/monad"
)

// Future is a single-assignment value that becomes available once.
// It is safe to await from many goroutines; all of them observe the same value.
type Future[T any] struct {
	s *state[T]
}

type state[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	fault error
}

func newState[T any]() *state[T] {
	return &state[T]{done: make(chan struct{})}
}

func (s *state[T]) resolve(v T, fault error) bool {
	resolved := false
	s.once.Do(func() {
		s.value = v
		s.fault = fault
		close(s.done)
		resolved = true
	})
	return resolved
}

// Go runs f on a new goroutine. A panic in f is captured and re-raised as a
// *monad.PanicError by Await.
func Go[T any](f func() T) Future[T] {
	s := newState[T]()

	go func() {
		var v T
		fault := monad.Capture(func() { v = f() })
		s.resolve(v, fault)
	}()

	return Future[T]{s: s}
}

// Ready returns an already resolved Future. No goroutine is started.
func Ready[T any](v T) Future[T] {
	s := newState[T]()
	s.resolve(v, nil)
	return Future[T]{s: s}
}

// FromChan resolves to the first value received from ch, or to None when ch
// is closed before delivering anything.
func FromChan[T any](ch <-chan T) Future[monad.Option[T]] {
	return Go(func() monad.Option[T] {
		v, ok := <-ch
		return monad.OptionOf(v, ok)
	})
}

// Await blocks until the value is available. It panics with
// monad.ErrUninitialized on a zero Future and re-raises a captured panic.
func (f Future[T]) Await() T {
	if f.s == nil {
		panic(monad.ErrUninitialized)
	}

	<-f.s.done
	if f.s.fault != nil {
		panic(f.s.fault)
	}
	return f.s.value
}

// AwaitContext is Await that gives up when ctx is done. Panics captured by the
// producer are returned as the error instead of being re-raised.
func (f Future[T]) AwaitContext(ctx context.Context) (T, error) {
	var zero T
	if f.s == nil {
		return zero, monad.ErrUninitialized
	}

	select {
	case <-f.s.done:
		if f.s.fault != nil {
			return zero, f.s.fault
		}
		return f.s.value, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Done is closed once the value is available. A zero Future never completes.
func (f Future[T]) Done() <-chan struct{} {
	if f.s == nil {
		return nil
	}
	return f.s.done
}

// IsReady reports whether Await would return without blocking.
func (f Future[T]) IsReady() bool {
	if f.s == nil {
		return false
	}

	select {
	case <-f.s.done:
		return true
	default:
		return false
	}
}

// Chan delivers the value on a channel and closes it. The channel is closed
// without a value when the producer panicked.
func (f Future[T]) Chan() <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		if f.s == nil {
			return
		}

		<-f.s.done
		if f.s.fault == nil {
			out <- f.s.value
		}
	}()

	return out
}

// Then applies g once f resolves.
func Then[A, B any](f Future[A], g func(A) B) Future[B] {
	return Go(func() B {
		return g(f.Await())
	})
}

// ThenAsync applies g once f resolves and waits for the future g returns.
func ThenAsync[A, B any](f Future[A], g func(A) Future[B]) Future[B] {
	return Go(func() B {
		return g(f.Await()).Await()
	})
}

func Flatten[T any](f Future[Future[T]]) Future[T] {
	return ThenAsync(f, func(inner Future[T]) Future[T] { return inner })
}
