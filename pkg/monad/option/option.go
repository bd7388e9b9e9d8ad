package option

import (
	"github.com/samber/lo"

	"github.com/ib-77/monad/pkg/monad"
)

// Effect calls f and wraps its result in Some. A panic in f yields None.
func Effect[T any](f func() T) monad.Option[T] {
	var v T
	if fault := monad.Capture(func() { v = f() }); fault != nil {
		return monad.None[T]()
	}
	return monad.Some(v)
}

func Map[In, Out any](input monad.Option[In], f func(In) Out) monad.Option[Out] {
	v, ok := input.Get()
	if !ok {
		return monad.None[Out]()
	}
	return Effect(func() Out { return f(v) })
}

func FlatMap[In, Out any](input monad.Option[In], f func(In) monad.Option[Out]) monad.Option[Out] {
	v, ok := input.Get()
	if !ok {
		return monad.None[Out]()
	}

	var out monad.Option[Out]
	if fault := monad.Capture(func() { out = f(v) }); fault != nil {
		return monad.None[Out]()
	}
	return out
}

func Flatten[T any](input monad.Option[monad.Option[T]]) monad.Option[T] {
	return input.GetOrElse(monad.None[T]())
}

// Fold reduces input to a B. When onSome panics, onNone is used instead and
// the panic is dropped. A panic in onNone reaches the caller.
func Fold[T, B any](input monad.Option[T], onNone func() B, onSome func(T) B) B {
	v, ok := input.Get()
	if !ok {
		return onNone()
	}

	var out B
	if fault := monad.Capture(func() { out = onSome(v) }); fault != nil {
		return onNone()
	}
	return out
}

// OrElseGet is OrElse with a lazily computed alternative.
func OrElseGet[T any](input monad.Option[T], alternative func() monad.Option[T]) monad.Option[T] {
	if input.IsSome() {
		return input
	}

	var out monad.Option[T]
	if fault := monad.Capture(func() { out = alternative() }); fault != nil {
		return monad.None[T]()
	}
	return out
}

// Filter keeps the value only if keep returns true.
func Filter[T any](input monad.Option[T], keep func(T) bool) monad.Option[T] {
	return FlatMap(input, func(v T) monad.Option[T] {
		return monad.OptionOf(v, keep(v))
	})
}

// ZipWith combines two values with f. The result is Some only if both inputs are Some.
func ZipWith[A, B, C any](left monad.Option[A], right monad.Option[B], f func(A, B) C) monad.Option[C] {
	a, ok := left.Get()
	if !ok {
		return monad.None[C]()
	}
	b, ok := right.Get()
	if !ok {
		return monad.None[C]()
	}
	return Effect(func() C { return f(a, b) })
}

func Zip[A, B any](left monad.Option[A], right monad.Option[B]) monad.Option[lo.Tuple2[A, B]] {
	return ZipWith(left, right, lo.T2[A, B])
}

// ZipLeft keeps the left value when both are Some.
func ZipLeft[A, B any](left monad.Option[A], right monad.Option[B]) monad.Option[A] {
	return ZipWith(left, right, func(a A, _ B) A { return a })
}

// ZipRight keeps the right value when both are Some.
func ZipRight[A, B any](left monad.Option[A], right monad.Option[B]) monad.Option[B] {
	return ZipWith(left, right, func(_ A, b B) B { return b })
}

// UnzipWith splits the value with f. Both results are None when input is None
// or f panics.
func UnzipWith[T, A, B any](input monad.Option[T], f func(T) (A, B)) (monad.Option[A], monad.Option[B]) {
	pair := Map(input, func(v T) lo.Tuple2[A, B] {
		a, b := f(v)
		return lo.T2(a, b)
	})
	return Map(pair, func(p lo.Tuple2[A, B]) A { return p.A }),
		Map(pair, func(p lo.Tuple2[A, B]) B { return p.B })
}

func Unzip[A, B any](input monad.Option[lo.Tuple2[A, B]]) (monad.Option[A], monad.Option[B]) {
	return UnzipWith(input, lo.Unpack2[A, B])
}
