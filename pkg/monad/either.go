package monad

import "fmt"

type side uint8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// Either holds exactly one of two alternatives. Right is the success channel
// and Left the alternative one. A zero Either has no side: the comma-ok
// accessors report nothing, and every operation that has to branch on the
// side panics with ErrUninitialized.
type Either[L, R any] struct {
	left  L
	right R
	side  side
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, side: sideLeft}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, side: sideRight}
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == sideLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.side == sideRight
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.side == sideLeft
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.side == sideRight
}

// MustBeSet panics with ErrUninitialized when e was not built by Left or Right.
func (e Either[L, R]) MustBeSet() {
	if e.side == sideNone {
		panic(fmt.Errorf("either[%T, %T]: %w", e.left, e.right, ErrUninitialized))
	}
}

func (e Either[L, R]) GetOrElse(defaultValue R) R {
	e.MustBeSet()
	if e.side == sideRight {
		return e.right
	}
	return defaultValue
}

// OrElse returns e when it is Right and other otherwise.
func (e Either[L, R]) OrElse(other Either[L, R]) Either[L, R] {
	e.MustBeSet()
	if e.side == sideRight {
		return e
	}
	return other
}

func (e Either[L, R]) Swap() Either[R, L] {
	e.MustBeSet()
	if e.side == sideRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) ToOption() Option[R] {
	e.MustBeSet()
	if e.side == sideRight {
		return Some(e.right)
	}
	return None[R]()
}

// ToTry converts Left into a Failure through toErr. A panic in toErr is
// captured as the Failure's fault.
func (e Either[L, R]) ToTry(toErr func(L) error) Try[R] {
	e.MustBeSet()
	if e.side == sideRight {
		return Succeed(e.right)
	}

	var err error
	if fault := Capture(func() { err = toErr(e.left) }); fault != nil {
		return Fail[R](fault)
	}
	return Fail[R](err)
}

func (e Either[L, R]) String() string {
	switch e.side {
	case sideLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case sideRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Either(<uninitialized>)"
	}
}
