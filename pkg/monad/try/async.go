package try

import (
	"context"

	"github.com/ib-77/monad/pkg/monad"
	"github.com/ib-77/monad/pkg/monad/future"
)

// await waits for f; a panic while waiting becomes the Failure's fault.
func await[T any](f future.Future[monad.Try[T]]) monad.Try[T] {
	var out monad.Try[T]
	if fault := monad.Capture(func() { out = f.Await() }); fault != nil {
		return monad.Fail[T](fault)
	}
	return out
}

// AwaitContext waits for f until ctx is done. Cancellation yields a Failure
// carrying ctx.Err().
func AwaitContext[T any](ctx context.Context, f future.Future[monad.Try[T]]) monad.Try[T] {
	out, err := f.AwaitContext(ctx)
	if err != nil {
		return monad.Fail[T](err)
	}
	return out
}

// Go runs f on a new goroutine and captures its outcome.
func Go[T any](f func() (T, error)) future.Future[monad.Try[T]] {
	return future.Go(func() monad.Try[T] { return Do(f) })
}

// MapAsync applies an asynchronous f to the value. A Failure short-circuits to
// a ready future without calling f.
func MapAsync[In, Out any](input monad.Try[In], f func(In) future.Future[Out]) future.Future[monad.Try[Out]] {
	pending := Map(input, f)
	fu, err := pending.Get()
	if err != nil {
		return future.Ready(monad.Fail[Out](err))
	}

	return future.Go(func() monad.Try[Out] {
		return Effect(fu.Await)
	})
}

func FlatMapAsync[In, Out any](input monad.Try[In],
	f func(In) future.Future[monad.Try[Out]]) future.Future[monad.Try[Out]] {

	pending := Map(input, f)
	fu, err := pending.Get()
	if err != nil {
		return future.Ready(monad.Fail[Out](err))
	}

	return future.Go(func() monad.Try[Out] {
		return await(fu)
	})
}

// RecoverAsync is Recover with an asynchronous f. A Success short-circuits.
func RecoverAsync[T any](input monad.Try[T], f func(error) future.Future[T]) future.Future[monad.Try[T]] {
	if input.IsSuccess() {
		return future.Ready(input)
	}

	return future.Go(func() monad.Try[T] {
		return Recover(input, func(cause error) T { return f(cause).Await() })
	})
}

// FoldAsync is Fold with asynchronous branches. A panic in onSuccess, or in
// the future it returns, calls onFailure with a *monad.FoldError.
func FoldAsync[T, B any](input monad.Try[T],
	onFailure func(error) future.Future[B], onSuccess func(T) future.Future[B]) future.Future[B] {

	return future.Go(func() B {
		return Fold(input,
			func(err error) B { return onFailure(err).Await() },
			func(v T) B { return onSuccess(v).Await() })
	})
}

// ZipWithAsync awaits left fully, then right. right is not awaited when left
// fails, so the left fault always wins.
func ZipWithAsync[A, B, C any](left future.Future[monad.Try[A]], right future.Future[monad.Try[B]],
	f func(A, B) C) future.Future[monad.Try[C]] {

	return future.Go(func() monad.Try[C] {
		a := await(left)
		if a.IsFailure() {
			return monad.Fail[C](a.Err())
		}
		return ZipWith(a, await(right), f)
	})
}

func MapFuture[In, Out any](input future.Future[monad.Try[In]], f func(In) Out) future.Future[monad.Try[Out]] {
	return future.Go(func() monad.Try[Out] {
		return Map(await(input), f)
	})
}

func FlatMapFuture[In, Out any](input future.Future[monad.Try[In]],
	f func(In) monad.Try[Out]) future.Future[monad.Try[Out]] {
	return future.Go(func() monad.Try[Out] {
		return FlatMap(await(input), f)
	})
}

func FlatMapFutureAsync[In, Out any](input future.Future[monad.Try[In]],
	f func(In) future.Future[monad.Try[Out]]) future.Future[monad.Try[Out]] {
	return future.Go(func() monad.Try[Out] {
		return await(FlatMapAsync(await(input), f))
	})
}

func RecoverFuture[T any](input future.Future[monad.Try[T]], f func(error) T) future.Future[monad.Try[T]] {
	return future.Go(func() monad.Try[T] {
		return Recover(await(input), f)
	})
}

func FoldFuture[T, B any](input future.Future[monad.Try[T]],
	onFailure func(error) B, onSuccess func(T) B) future.Future[B] {
	return future.Go(func() B {
		return Fold(await(input), onFailure, onSuccess)
	})
}

// OrElseFuture awaits other only when input resolves to a Failure.
func OrElseFuture[T any](input future.Future[monad.Try[T]],
	other future.Future[monad.Try[T]]) future.Future[monad.Try[T]] {
	return future.Go(func() monad.Try[T] {
		if v := await(input); v.IsSuccess() {
			return v
		}
		return await(other)
	})
}

func GetOrElseFuture[T any](input future.Future[monad.Try[T]], defaultValue T) future.Future[T] {
	return future.Go(func() T {
		return await(input).GetOrElse(defaultValue)
	})
}
