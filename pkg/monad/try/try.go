package try

import (
	"errors"

	"github.com/samber/lo"

	"github.com/ib-77/monad/pkg/monad"
)

// Effect calls f and captures a panic as the Failure's fault.
func Effect[T any](f func() T) monad.Try[T] {
	var v T
	if fault := monad.Capture(func() { v = f() }); fault != nil {
		return monad.Fail[T](fault)
	}
	return monad.Succeed(v)
}

// Do calls f, which follows the (value, error) convention. Both a returned
// error and a panic become the Failure's fault.
func Do[T any](f func() (T, error)) monad.Try[T] {
	var (
		v   T
		err error
	)
	if fault := monad.Capture(func() { v, err = f() }); fault != nil {
		return monad.Fail[T](fault)
	}
	return monad.TryOf(v, err)
}

func Map[In, Out any](input monad.Try[In], f func(In) Out) monad.Try[Out] {
	v, err := input.Get()
	if err != nil {
		return monad.Fail[Out](err)
	}
	return Effect(func() Out { return f(v) })
}

// Attempt is Map for functions returning (Out, error).
func Attempt[In, Out any](input monad.Try[In], f func(In) (Out, error)) monad.Try[Out] {
	v, err := input.Get()
	if err != nil {
		return monad.Fail[Out](err)
	}
	return Do(func() (Out, error) { return f(v) })
}

func FlatMap[In, Out any](input monad.Try[In], f func(In) monad.Try[Out]) monad.Try[Out] {
	v, err := input.Get()
	if err != nil {
		return monad.Fail[Out](err)
	}

	var out monad.Try[Out]
	if fault := monad.Capture(func() { out = f(v) }); fault != nil {
		return monad.Fail[Out](fault)
	}
	return out
}

func Flatten[T any](input monad.Try[monad.Try[T]]) monad.Try[T] {
	return FlatMap(input, func(inner monad.Try[T]) monad.Try[T] { return inner })
}

// Recover turns a Failure back into a Success with f. If f panics the result
// is a Failure carrying a *monad.RecoverError whose Cause is the original fault.
func Recover[T any](input monad.Try[T], f func(error) T) monad.Try[T] {
	if input.IsSuccess() {
		return input
	}

	cause := input.Err()
	var v T
	if fault := monad.Capture(func() { v = f(cause) }); fault != nil {
		return monad.Fail[T](&monad.RecoverError{Cause: cause, Fault: fault})
	}
	return monad.Succeed(v)
}

// RecoverWith is Recover for functions returning a Try. A Failure returned by
// f replaces the original fault; a panic in f is chained like in Recover.
func RecoverWith[T any](input monad.Try[T], f func(error) monad.Try[T]) monad.Try[T] {
	if input.IsSuccess() {
		return input
	}

	cause := input.Err()
	var out monad.Try[T]
	if fault := monad.Capture(func() { out = f(cause) }); fault != nil {
		return monad.Fail[T](&monad.RecoverError{Cause: cause, Fault: fault})
	}
	return out
}

// Fold reduces input to a B. When onSuccess panics, onFailure is called with a
// *monad.FoldError wrapping that panic. A panic in onFailure reaches the caller.
func Fold[T, B any](input monad.Try[T], onFailure func(error) B, onSuccess func(T) B) B {
	v, err := input.Get()
	if err != nil {
		return onFailure(err)
	}

	var out B
	if fault := monad.Capture(func() { out = onSuccess(v) }); fault != nil {
		return onFailure(&monad.FoldError{Fault: fault})
	}
	return out
}

// ZipWith combines two values with f. The left fault wins when both fail, and
// f is only called when both succeed.
func ZipWith[A, B, C any](left monad.Try[A], right monad.Try[B], f func(A, B) C) monad.Try[C] {
	a, err := left.Get()
	if err != nil {
		return monad.Fail[C](err)
	}
	b, err := right.Get()
	if err != nil {
		return monad.Fail[C](err)
	}
	return Effect(func() C { return f(a, b) })
}

func Zip[A, B any](left monad.Try[A], right monad.Try[B]) monad.Try[lo.Tuple2[A, B]] {
	return ZipWith(left, right, lo.T2[A, B])
}

func ZipLeft[A, B any](left monad.Try[A], right monad.Try[B]) monad.Try[A] {
	return ZipWith(left, right, func(a A, _ B) A { return a })
}

func ZipRight[A, B any](left monad.Try[A], right monad.Try[B]) monad.Try[B] {
	return ZipWith(left, right, func(_ A, b B) B { return b })
}

// UnzipWith splits the value with f. Both results carry the same fault when
// input is a Failure or f panics.
func UnzipWith[T, A, B any](input monad.Try[T], f func(T) (A, B)) (monad.Try[A], monad.Try[B]) {
	pair := Map(input, func(v T) lo.Tuple2[A, B] {
		a, b := f(v)
		return lo.T2(a, b)
	})
	return Map(pair, func(p lo.Tuple2[A, B]) A { return p.A }),
		Map(pair, func(p lo.Tuple2[A, B]) B { return p.B })
}

func Unzip[A, B any](input monad.Try[lo.Tuple2[A, B]]) (monad.Try[A], monad.Try[B]) {
	return UnzipWith(input, lo.Unpack2[A, B])
}

// Validate fails a Success whose value does not pass validate.
func Validate[T any](input monad.Try[T], validate func(T) (valid bool, errMsg string)) monad.Try[T] {
	return FlatMap(input, func(v T) monad.Try[T] {
		if valid, errMsg := validate(v); !valid {
			return monad.Fail[T](errors.New(errMsg))
		}
		return monad.Succeed(v)
	})
}

// ValidateAll runs every validator against a Success. With breakOnError it
// stops at the first failure; otherwise all faults are joined.
func ValidateAll[T any](input monad.Try[T], breakOnError bool,
	validators ...func(T) (valid bool, errMsg string)) monad.Try[T] {

	v, err := input.Get()
	if err != nil || len(validators) == 0 {
		return input
	}

	var faults []error
	for _, validate := range validators {
		checked := Validate(monad.Succeed(v), validate)
		if checked.IsSuccess() {
			continue
		}
		if breakOnError {
			return checked
		}
		faults = append(faults, monad.Errors(checked.Err())...)
	}

	if len(faults) > 0 {
		return monad.Fail[T](errors.Join(faults...))
	}
	return input
}

// Ensure fails a Success when check returns an error, keeping the value otherwise.
func Ensure[T any](input monad.Try[T], check func(T) error) monad.Try[T] {
	return FlatMap(input, func(v T) monad.Try[T] {
		if err := check(v); err != nil {
			return monad.Fail[T](err)
		}
		return input
	})
}

// Filter fails a Success whose value does not satisfy keep, using onReject for the fault.
func Filter[T any](input monad.Try[T], keep func(T) bool, onReject func(T) error) monad.Try[T] {
	return Ensure(input, func(v T) error {
		if keep(v) {
			return nil
		}
		return onReject(v)
	})
}

// Tee runs a side effect on a Success and returns input unchanged. A panic in
// sideEffect turns the result into a Failure.
func Tee[T any](input monad.Try[T], sideEffect func(T)) monad.Try[T] {
	return FlatMap(input, func(v T) monad.Try[T] {
		sideEffect(v)
		return input
	})
}

// Inspect runs onSuccess or onFailure and returns input unchanged. Nil
// callbacks are skipped. A panic in onSuccess becomes the fault; a panic in
// onFailure is joined after the original fault.
func Inspect[T any](input monad.Try[T], onSuccess func(T), onFailure func(error)) monad.Try[T] {
	_, err := input.Get()
	if err != nil {
		if onFailure == nil {
			return input
		}
		if fault := monad.Capture(func() { onFailure(err) }); fault != nil {
			return monad.Fail[T](errors.Join(err, fault))
		}
		return input
	}

	if onSuccess == nil {
		return input
	}
	return Tee(input, onSuccess)
}
