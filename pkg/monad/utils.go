package monad

import (
	"context"
	"errors"
	"reflect"
)

// Capture runs f and returns the panic it raised as an error, or nil.
// A non-nil *PanicError is returned unchanged; any other panic value,
// including a typed-nil *PanicError, is wrapped in a new *PanicError.
func Capture(f func()) (fault error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*PanicError); ok && pe != nil {
				fault = pe
				return
			}
			fault = NewPanicError(r)
		}
	}()

	f()
	return nil
}

// IsNil reports whether i is nil or a nil pointer. Fail uses it to catch a
// typed-nil error, which compares non-nil as an error interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens an error built with errors.Join.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
