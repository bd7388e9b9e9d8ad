package monad

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUninitialized = errors.New("monad: uninitialized value")
	ErrNilFault      = errors.New("monad: failure without an error")
	ErrNoValue       = errors.New("monad: no value")
)

// PanicError is the fault captured when a continuation panics.
// Error returns the text of the panic value, so a panic with errors.New("boom")
// reads as "boom"; Unwrap exposes the panic value when it is an error.
type PanicError struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Value     any
	Stack     []byte
}

func NewPanicError(value any) *PanicError {
	return &PanicError{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Value:     value,
		Stack:     debug.Stack(),
	}
}

func (e *PanicError) Error() string {
	if e == nil {
		return "panic: <nil>"
	}
	if err, ok := e.Value.(error); ok && !IsNil(err) {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

// FoldError wraps a fault raised by the success branch of a fold before it is
// handed to the failure branch. It lets the failure branch tell a fault
// introduced while folding from the fault the container already carried.
type FoldError struct {
	Fault error
}

func (e *FoldError) Error() string {
	return "fold: " + e.Fault.Error()
}

func (e *FoldError) Unwrap() error {
	return e.Fault
}

// RecoverError is the fault of a recovery that itself failed. Cause is the
// original fault and stays the root cause; Fault is the one raised by the
// recovery function.
type RecoverError struct {
	Cause error
	Fault error
}

func (e *RecoverError) Error() string {
	return fmt.Sprintf("recover: %v (cause: %v)", e.Fault, e.Cause)
}

func (e *RecoverError) Unwrap() []error {
	return []error{e.Fault, e.Cause}
}

// RootCause returns the fault the recovery was trying to handle.
func (e *RecoverError) RootCause() error {
	var inner *RecoverError
	if errors.As(e.Cause, &inner) {
		return inner.RootCause()
	}
	return e.Cause
}
