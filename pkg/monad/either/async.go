package either

import (
	"github.com/ib-77/monad/pkg/monad"
	"github.com/ib-77/monad/pkg/monad/future"
)

// await waits for f; a panic while waiting is absorbed like a panicking continuation.
func await[L, R any](f future.Future[monad.Either[L, R]]) monad.Either[L, R] {
	return capture(f.Await)
}

// MapAsync applies an asynchronous f to the Right value. Left short-circuits
// to a ready future without calling f.
func MapAsync[L, In, Out any](input monad.Either[L, In],
	f func(In) future.Future[Out]) future.Future[monad.Either[L, Out]] {

	pending := Map(input, f)
	if l, ok := pending.Left(); ok {
		return future.Ready(monad.Left[L, Out](l))
	}

	fu, _ := pending.Right()
	return future.Go(func() monad.Either[L, Out] {
		return capture(func() monad.Either[L, Out] { return monad.Right[L](fu.Await()) })
	})
}

func MapLeftAsync[In, Out, R any](input monad.Either[In, R],
	f func(In) future.Future[Out]) future.Future[monad.Either[Out, R]] {

	pending := MapLeft(input, f)
	if r, ok := pending.Right(); ok {
		return future.Ready(monad.Right[Out](r))
	}

	fu, _ := pending.Left()
	return future.Go(func() monad.Either[Out, R] {
		return capture(func() monad.Either[Out, R] { return monad.Left[Out, R](fu.Await()) })
	})
}

func FlatMapAsync[L, In, Out any](input monad.Either[L, In],
	f func(In) future.Future[monad.Either[L, Out]]) future.Future[monad.Either[L, Out]] {

	pending := Map(input, f)
	if l, ok := pending.Left(); ok {
		return future.Ready(monad.Left[L, Out](l))
	}

	fu, _ := pending.Right()
	return future.Go(func() monad.Either[L, Out] {
		return await(fu)
	})
}

// FoldAsync is Fold with asynchronous branches.
func FoldAsync[L, R, B any](input monad.Either[L, R],
	onLeft func(L) future.Future[B], onRight func(R) future.Future[B]) future.Future[B] {

	input.MustBeSet()
	return future.Go(func() B {
		return Fold(input,
			func(l L) B { return onLeft(l).Await() },
			func(r R) B { return onRight(r).Await() })
	})
}

// ZipWithAsync awaits left fully, then right. right is not awaited when left is Left.
func ZipWithAsync[L, A, B, C any](left future.Future[monad.Either[L, A]], right future.Future[monad.Either[L, B]],
	f func(A, B) C) future.Future[monad.Either[L, C]] {

	return future.Go(func() monad.Either[L, C] {
		a := await(left)
		a.MustBeSet()
		if l, ok := a.Left(); ok {
			return monad.Left[L, C](l)
		}
		return ZipWith(a, await(right), f)
	})
}

func MapFuture[L, In, Out any](input future.Future[monad.Either[L, In]],
	f func(In) Out) future.Future[monad.Either[L, Out]] {
	return future.Go(func() monad.Either[L, Out] {
		return Map(await(input), f)
	})
}

func FlatMapFuture[L, In, Out any](input future.Future[monad.Either[L, In]],
	f func(In) monad.Either[L, Out]) future.Future[monad.Either[L, Out]] {
	return future.Go(func() monad.Either[L, Out] {
		return FlatMap(await(input), f)
	})
}

func FlatMapFutureAsync[L, In, Out any](input future.Future[monad.Either[L, In]],
	f func(In) future.Future[monad.Either[L, Out]]) future.Future[monad.Either[L, Out]] {
	return future.Go(func() monad.Either[L, Out] {
		return await(FlatMapAsync(await(input), f))
	})
}

func FoldFuture[L, R, B any](input future.Future[monad.Either[L, R]],
	onLeft func(L) B, onRight func(R) B) future.Future[B] {
	return future.Go(func() B {
		return Fold(await(input), onLeft, onRight)
	})
}

// OrElseFuture awaits other only when input resolves to Left.
func OrElseFuture[L, R any](input future.Future[monad.Either[L, R]],
	other future.Future[monad.Either[L, R]]) future.Future[monad.Either[L, R]] {
	return future.Go(func() monad.Either[L, R] {
		v := await(input)
		v.MustBeSet()
		if v.IsRight() {
			return v
		}
		return await(other)
	})
}

func GetOrElseFuture[L, R any](input future.Future[monad.Either[L, R]], defaultValue R) future.Future[R] {
	return future.Go(func() R {
		return await(input).GetOrElse(defaultValue)
	})
}
