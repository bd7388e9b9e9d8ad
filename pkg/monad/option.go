package monad

import "fmt"

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from the comma-ok idiom.
func OptionOf[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

// FromPtr returns None for a nil pointer and Some of the pointed-to value otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and true for Some, the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) GetOrElse(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

// OrElse returns o when it is Some and other otherwise.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// ToTry promotes o into a Try. None becomes a Failure carrying err,
// or ErrNoValue when err is nil.
func (o Option[T]) ToTry(err error) Try[T] {
	if o.some {
		return Succeed(o.value)
	}
	if IsNil(err) {
		err = ErrNoValue
	}
	return Fail[T](err)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
