// Package moconv converts between this module's containers and the ones from
// github.com/samber/mo, for collaborators that already speak mo.
package moconv

import (
	"github.com/samber/mo"

	"github.com/ib-77/monad/pkg/monad"
)

func ToOption[T any](o mo.Option[T]) monad.Option[T] {
	v, ok := o.Get()
	return monad.OptionOf(v, ok)
}

func FromOption[T any](o monad.Optional[T]) mo.Option[T] {
	if v, ok := o.Get(); ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}

func ToTry[T any](r mo.Result[T]) monad.Try[T] {
	v, err := r.Get()
	return monad.TryOf(v, err)
}

func FromTry[T any](t monad.Fallible[T]) mo.Result[T] {
	v, err := t.Get()
	if err != nil {
		return mo.Err[T](err)
	}
	return mo.Ok(v)
}

func ToEither[L, R any](e mo.Either[L, R]) monad.Either[L, R] {
	if l, ok := e.Left(); ok {
		return monad.Left[L, R](l)
	}
	r, _ := e.Right()
	return monad.Right[L](r)
}

// FromEither panics with monad.ErrUninitialized when e has no side, since mo
// has no way to express it.
func FromEither[L, R any](e monad.Alternative[L, R]) mo.Either[L, R] {
	if l, ok := e.Left(); ok {
		return mo.Left[L, R](l)
	}
	if r, ok := e.Right(); ok {
		return mo.Right[L, R](r)
	}
	panic(monad.ErrUninitialized)
}
