package monad

import "fmt"

type tryState uint8

const (
	tryUninitialized tryState = iota
	trySuccess
	tryFailure
)

// Try holds either a computed value (Success) or a captured fault (Failure).
// The discriminant is set by every constructor; a zero Try is treated as
// Failure(ErrUninitialized).
type Try[T any] struct {
	value T
	err   error
	state tryState
}

func Succeed[T any](v T) Try[T] {
	return Try[T]{value: v, state: trySuccess}
}

// Fail builds a Failure. A nil (or typed-nil) err is replaced with ErrNilFault
// so that a Failure always carries a usable error.
func Fail[T any](err error) Try[T] {
	if IsNil(err) {
		err = ErrNilFault
	}
	return Try[T]{err: err, state: tryFailure}
}

// TryOf builds a Try from the (value, error) return convention.
func TryOf[T any](v T, err error) Try[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Succeed(v)
}

func (t Try[T]) IsSuccess() bool {
	return t.state == trySuccess
}

func (t Try[T]) IsFailure() bool {
	return t.state != trySuccess
}

// Err returns the captured fault, or nil for a Success.
func (t Try[T]) Err() error {
	switch t.state {
	case trySuccess:
		return nil
	case tryFailure:
		return t.err
	default:
		return ErrUninitialized
	}
}

func (t Try[T]) Get() (T, error) {
	if t.state == trySuccess {
		return t.value, nil
	}
	var zero T
	return zero, t.Err()
}

func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.state == trySuccess {
		return t.value
	}
	return defaultValue
}

// OrElse returns t when it is a Success and other otherwise.
func (t Try[T]) OrElse(other Try[T]) Try[T] {
	if t.state == trySuccess {
		return t
	}
	return other
}

// ToOption discards the fault.
func (t Try[T]) ToOption() Option[T] {
	if t.state == trySuccess {
		return Some(t.value)
	}
	return None[T]()
}

// ToEither moves the fault into Left and the value into Right.
func (t Try[T]) ToEither() Either[error, T] {
	if t.state == trySuccess {
		return Right[error](t.value)
	}
	return Left[error, T](t.Err())
}

func (t Try[T]) String() string {
	if t.state == trySuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}
