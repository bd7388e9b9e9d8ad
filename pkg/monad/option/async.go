package option

import (
	"context"

	"github.com/ib-77/monad/pkg/monad"
	"github.com/ib-77/monad/pkg/monad/future"
)

// await waits for f; a panic while waiting (zero future, panicking producer)
// is absorbed into None.
func await[T any](f future.Future[monad.Option[T]]) monad.Option[T] {
	var out monad.Option[T]
	if fault := monad.Capture(func() { out = f.Await() }); fault != nil {
		return monad.None[T]()
	}
	return out
}

// AwaitContext waits for f until ctx is done. Cancellation and captured
// panics both yield None.
func AwaitContext[T any](ctx context.Context, f future.Future[monad.Option[T]]) monad.Option[T] {
	out, err := f.AwaitContext(ctx)
	if err != nil {
		return monad.None[T]()
	}
	return out
}

// MapAsync applies an asynchronous f to the value. None short-circuits to a
// ready future without calling f.
func MapAsync[In, Out any](input monad.Option[In], f func(In) future.Future[Out]) future.Future[monad.Option[Out]] {
	pending := Map(input, f)
	fu, ok := pending.Get()
	if !ok {
		return future.Ready(monad.None[Out]())
	}

	return future.Go(func() monad.Option[Out] {
		return Effect(fu.Await)
	})
}

func FlatMapAsync[In, Out any](input monad.Option[In],
	f func(In) future.Future[monad.Option[Out]]) future.Future[monad.Option[Out]] {

	pending := Map(input, f)
	fu, ok := pending.Get()
	if !ok {
		return future.Ready(monad.None[Out]())
	}

	return future.Go(func() monad.Option[Out] {
		return await(fu)
	})
}

// FoldAsync is Fold with asynchronous branches. A panic in onSome, or in the
// future it returns, switches to onNone.
func FoldAsync[T, B any](input monad.Option[T],
	onNone func() future.Future[B], onSome func(T) future.Future[B]) future.Future[B] {

	v, ok := input.Get()
	if !ok {
		return future.Go(func() B { return onNone().Await() })
	}

	return future.Go(func() B {
		var out B
		if fault := monad.Capture(func() { out = onSome(v).Await() }); fault != nil {
			return onNone().Await()
		}
		return out
	})
}

// ZipWithAsync awaits left fully, then right. right is not awaited when left is None.
func ZipWithAsync[A, B, C any](left future.Future[monad.Option[A]], right future.Future[monad.Option[B]],
	f func(A, B) C) future.Future[monad.Option[C]] {

	return future.Go(func() monad.Option[C] {
		a, ok := await(left).Get()
		if !ok {
			return monad.None[C]()
		}
		return ZipWith(monad.Some(a), await(right), f)
	})
}

func MapFuture[In, Out any](input future.Future[monad.Option[In]], f func(In) Out) future.Future[monad.Option[Out]] {
	return future.Go(func() monad.Option[Out] {
		return Map(await(input), f)
	})
}

func FlatMapFuture[In, Out any](input future.Future[monad.Option[In]],
	f func(In) monad.Option[Out]) future.Future[monad.Option[Out]] {
	return future.Go(func() monad.Option[Out] {
		return FlatMap(await(input), f)
	})
}

func FlatMapFutureAsync[In, Out any](input future.Future[monad.Option[In]],
	f func(In) future.Future[monad.Option[Out]]) future.Future[monad.Option[Out]] {
	return future.Go(func() monad.Option[Out] {
		return await(FlatMapAsync(await(input), f))
	})
}

func FoldFuture[T, B any](input future.Future[monad.Option[T]], onNone func() B, onSome func(T) B) future.Future[B] {
	return future.Go(func() B {
		return Fold(await(input), onNone, onSome)
	})
}

// OrElseFuture awaits other only when input resolves to None.
func OrElseFuture[T any](input future.Future[monad.Option[T]],
	other future.Future[monad.Option[T]]) future.Future[monad.Option[T]] {
	return future.Go(func() monad.Option[T] {
		if v := await(input); v.IsSome() {
			return v
		}
		return await(other)
	})
}

func GetOrElseFuture[T any](input future.Future[monad.Option[T]], defaultValue T) future.Future[T] {
	return future.Go(func() T {
		return await(input).GetOrElse(defaultValue)
	})
}
