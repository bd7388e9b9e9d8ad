package either

import (
	"errors"
	"reflect"

	"github.com/samber/lo"

	"github.com/ib-77/monad/pkg/monad"
)

// FaultHolder is implemented by Left types that build themselves from a
// captured fault. The method is called on the zero value of L.
type FaultHolder[L any] interface {
	FromFault(fault error) L
}

// leftOf turns a captured fault into an L. It tries, in order: the fault
// itself, the raw panic value, L's FaultHolder method, the fault text for
// string kinds. Otherwise the zero L is used, so a fault never escapes.
func leftOf[L any](fault error) L {
	if l, ok := any(fault).(L); ok {
		return l
	}

	var pe *monad.PanicError
	if errors.As(fault, &pe) {
		if l, ok := pe.Value.(L); ok {
			return l
		}
	}

	var l L
	if holder, ok := any(l).(FaultHolder[L]); ok {
		return holder.FromFault(fault)
	}

	if rv := reflect.ValueOf(&l).Elem(); rv.Kind() == reflect.String {
		rv.SetString(fault.Error())
	}
	return l
}

func absorb[L, R any](fault error) monad.Either[L, R] {
	return monad.Left[L, R](leftOf[L](fault))
}

// capture runs f and absorbs its panic.
func capture[L, R any](f func() monad.Either[L, R]) monad.Either[L, R] {
	var out monad.Either[L, R]
	if fault := monad.Capture(func() { out = f() }); fault != nil {
		return absorb[L, R](fault)
	}
	return out
}

// Effect calls f and captures a panic into Left.
func Effect[R any](f func() R) monad.Either[error, R] {
	return capture(func() monad.Either[error, R] { return monad.Right[error](f()) })
}

// Absorb calls f and maps any panic it raises into Left with onFault. Use it
// when the default fault-to-Left mapping would lose information for L.
func Absorb[L, R any](f func() monad.Either[L, R], onFault func(error) L) monad.Either[L, R] {
	var out monad.Either[L, R]
	if fault := monad.Capture(func() { out = f() }); fault != nil {
		return monad.Left[L, R](onFault(fault))
	}
	return out
}

// FromOption promotes an Option, using left for None.
func FromOption[L, R any](input monad.Option[R], left L) monad.Either[L, R] {
	if v, ok := input.Get(); ok {
		return monad.Right[L](v)
	}
	return monad.Left[L, R](left)
}

func FromTry[R any](input monad.Try[R]) monad.Either[error, R] {
	return input.ToEither()
}

func Map[L, In, Out any](input monad.Either[L, In], f func(In) Out) monad.Either[L, Out] {
	input.MustBeSet()
	if l, ok := input.Left(); ok {
		return monad.Left[L, Out](l)
	}

	r, _ := input.Right()
	return capture(func() monad.Either[L, Out] { return monad.Right[L](f(r)) })
}

func MapLeft[In, Out, R any](input monad.Either[In, R], f func(In) Out) monad.Either[Out, R] {
	input.MustBeSet()
	if r, ok := input.Right(); ok {
		return monad.Right[Out](r)
	}

	l, _ := input.Left()
	return capture(func() monad.Either[Out, R] { return monad.Left[Out, R](f(l)) })
}

// BiMap maps whichever side is present.
func BiMap[L1, L2, R1, R2 any](input monad.Either[L1, R1],
	onLeft func(L1) L2, onRight func(R1) R2) monad.Either[L2, R2] {

	input.MustBeSet()
	if l, ok := input.Left(); ok {
		return capture(func() monad.Either[L2, R2] { return monad.Left[L2, R2](onLeft(l)) })
	}

	r, _ := input.Right()
	return capture(func() monad.Either[L2, R2] { return monad.Right[L2](onRight(r)) })
}

func FlatMap[L, In, Out any](input monad.Either[L, In], f func(In) monad.Either[L, Out]) monad.Either[L, Out] {
	input.MustBeSet()
	if l, ok := input.Left(); ok {
		return monad.Left[L, Out](l)
	}

	r, _ := input.Right()
	return capture(func() monad.Either[L, Out] { return f(r) })
}

func FlatMapLeft[In, Out, R any](input monad.Either[In, R], f func(In) monad.Either[Out, R]) monad.Either[Out, R] {
	input.MustBeSet()
	if r, ok := input.Right(); ok {
		return monad.Right[Out](r)
	}

	l, _ := input.Left()
	return capture(func() monad.Either[Out, R] { return f(l) })
}

// Fold reduces input to a B. It panics with monad.ErrUninitialized when input
// has no side. When onRight panics, onLeft receives the *monad.FoldError
// mapped into L the same way continuation faults are.
func Fold[L, R, B any](input monad.Either[L, R], onLeft func(L) B, onRight func(R) B) B {
	input.MustBeSet()
	if l, ok := input.Left(); ok {
		return onLeft(l)
	}

	r, _ := input.Right()
	var out B
	if fault := monad.Capture(func() { out = onRight(r) }); fault != nil {
		return onLeft(leftOf[L](&monad.FoldError{Fault: fault}))
	}
	return out
}

// ZipWith combines two Right values with f. The left operand's Left wins when
// both are Left.
func ZipWith[L, A, B, C any](left monad.Either[L, A], right monad.Either[L, B], f func(A, B) C) monad.Either[L, C] {
	left.MustBeSet()
	if l, ok := left.Left(); ok {
		return monad.Left[L, C](l)
	}

	right.MustBeSet()
	if l, ok := right.Left(); ok {
		return monad.Left[L, C](l)
	}

	a, _ := left.Right()
	b, _ := right.Right()
	return capture(func() monad.Either[L, C] { return monad.Right[L](f(a, b)) })
}

func Zip[L, A, B any](left monad.Either[L, A], right monad.Either[L, B]) monad.Either[L, lo.Tuple2[A, B]] {
	return ZipWith(left, right, lo.T2[A, B])
}

func ZipRight[L, A, B any](left monad.Either[L, A], right monad.Either[L, B]) monad.Either[L, B] {
	return ZipWith(left, right, func(_ A, b B) B { return b })
}

// UnzipWith splits the Right value with f. Both results share the Left when
// input is Left.
func UnzipWith[L, T, A, B any](input monad.Either[L, T], f func(T) (A, B)) (monad.Either[L, A], monad.Either[L, B]) {
	pair := Map(input, func(v T) lo.Tuple2[A, B] {
		a, b := f(v)
		return lo.T2(a, b)
	})
	return Map(pair, func(p lo.Tuple2[A, B]) A { return p.A }),
		Map(pair, func(p lo.Tuple2[A, B]) B { return p.B })
}

func Unzip[L, A, B any](input monad.Either[L, lo.Tuple2[A, B]]) (monad.Either[L, A], monad.Either[L, B]) {
	return UnzipWith(input, lo.Unpack2[A, B])
}
