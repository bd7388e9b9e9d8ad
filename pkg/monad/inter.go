package monad

// Optional is the view of an Option needed by collaborators that only ask
// whether a payload is present and read it.
type Optional[T any] interface {
	// IsSome returns true if a value is present
	IsSome() bool
	// Get returns the value and whether it is present
	Get() (T, bool)
}

// Fallible is the view of a Try needed by collaborators that follow the
// (value, error) convention.
type Fallible[T any] interface {
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
	// Get returns the value, or the zero value and the fault
	Get() (T, error)
}

// Alternative is the discriminant view of an Either.
type Alternative[L, R any] interface {
	IsLeft() bool
	IsRight() bool
	Left() (L, bool)
	Right() (R, bool)
}

var (
	_ Optional[int]            = Option[int]{}
	_ Fallible[int]            = Try[int]{}
	_ Alternative[string, int] = Either[string, int]{}
)
