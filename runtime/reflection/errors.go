package reflection

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNotFound is returned when reflecting an unregistered path, or when
	// a registration function is applied with nothing to register.
	ErrNotFound = errors.New("not found")

	// ErrIllegalValue is returned when a registration function receives
	// arguments of the wrong shape.
	ErrIllegalValue = errors.New("illegal value")
)

// NotFoundError reports a missing registry entry or an empty registration.
// Kind describes what was looked up ("class path", "middleware", ...) and
// Name identifies the offending lookup key or target.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IllegalValueError reports a malformed argument passed to a registration
// function. Index is the zero-based argument position.
type IllegalValueError struct {
	Annotation string
	Index      int
	Value      any
	Reason     string
}

func (e *IllegalValueError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Annotation, e.Reason)
	}
	return fmt.Sprintf("%s: argument %d has illegal value %v (%T)", e.Annotation, e.Index, e.Value, e.Value)
}

func (e *IllegalValueError) Is(target error) bool {
	return target == ErrIllegalValue
}
