package chain

import (
	"context"

	"github.com/ib-77/monad/pkg/monad"
	"github.com/ib-77/monad/pkg/monad/try"
)

// Chain wraps a monad.Try with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res monad.Try[T]
}

func Start[T any](ctx context.Context, r monad.Try[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, monad.Succeed(v))
}

func FromError[T any](ctx context.Context, err error) Chain[T] {
	return Start(ctx, monad.Fail[T](err))
}

func (c Chain[T]) Result() monad.Try[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// stopped reports whether the chain must not run further steps. A done
// context turns the result into a Failure carrying ctx.Err().
func (c Chain[T]) stopped() (Chain[T], bool) {
	if c.res.IsFailure() {
		return c, true
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, res: monad.Fail[T](err)}, true
	}
	return c, false
}

// Then composes functions that already return monad.Try[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) monad.Try[T]) Chain[T] {
	return To(c, onSuccess)
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(attempt func(ctx context.Context, t T) (T, error)) Chain[T] {
	if s, stop := c.stopped(); stop {
		return s
	}
	return Chain[T]{ctx: c.ctx, res: try.Attempt(c.res, func(v T) (T, error) { return attempt(c.ctx, v) })}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Convert(c, onSuccess)
}

// Recover turns a failure back into a value. It runs even when the context is done.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: try.Recover(c.res, func(err error) T { return onFailure(c.ctx, err) })}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) monad.Try[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if s, stop := c.stopped(); stop {
		return s
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !c.check(until) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) monad.Try[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && c.check(while) {
		c = c.Then(onSuccess)
	}
	return c
}

// check evaluates a loop predicate; a panic counts as false.
func (c Chain[T]) check(predicate func(ctx context.Context, t T) bool) bool {
	v, _ := c.res.Get()
	ok := false
	if fault := monad.Capture(func() { ok = predicate(c.ctx, v) }); fault != nil {
		return false
	}
	return ok
}

// Or returns the first successful chain; if none succeeded the first failure wins.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	var (
		success func(T)
		failure func(error)
	)
	if onSuccess != nil {
		success = func(v T) { onSuccess(c.ctx, v) }
	}
	if onFailure != nil {
		failure = func(err error) { onFailure(c.ctx, err) }
	}
	return Chain[T]{ctx: c.ctx, res: try.Inspect(c.res, success, failure)}
}

// Finally collapses the chain to a final value. Failures caused by context
// cancellation or deadline go to onCancel.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return Finally(c, onSuccess, onFailure, onCancel)
}

// To switches the chain to a new value type with a function returning monad.Try[U].
func To[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) monad.Try[U]) Chain[U] {
	if s, stop := c.stopped(); stop {
		return Chain[U]{ctx: s.ctx, res: monad.Fail[U](s.res.Err())}
	}
	return Chain[U]{ctx: c.ctx, res: try.FlatMap(c.res, func(v T) monad.Try[U] { return onSuccess(c.ctx, v) })}
}

// Convert maps the successful value to a new value type.
func Convert[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	if s, stop := c.stopped(); stop {
		return Chain[U]{ctx: s.ctx, res: monad.Fail[U](s.res.Err())}
	}
	return Chain[U]{ctx: c.ctx, res: try.Map(c.res, func(v T) U { return onSuccess(c.ctx, v) })}
}

func Finally[T, U any](c Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {

	return try.Fold(c.res,
		func(err error) U {
			if monad.IsCancellation(err) {
				return onCancel(c.ctx, err)
			}
			return onFailure(c.ctx, err)
		},
		func(v T) U { return onSuccess(c.ctx, v) })
}
