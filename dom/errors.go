package dom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the error kind for calls with arguments of the wrong
// type or form.
var ErrInvalidArgument = errors.New("invalid argument")

// StaticMethodError is returned by document-level functions called with
// invalid arguments.
type StaticMethodError struct {
	Method string
}

func (e *StaticMethodError) Error() string {
	return fmt.Sprintf("invalid call of DOM.%s", e.Method)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) work.
func (e *StaticMethodError) Unwrap() error {
	return ErrInvalidArgument
}

// MethodError is returned by element methods called with invalid arguments.
type MethodError struct {
	Method string
	Err    error // underlying error, may be nil
}

func (e *MethodError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid call of $Element#%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("invalid call of $Element#%s", e.Method)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) work.
func (e *MethodError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.Err}
}
