package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCheck is the fault recorded when a step is given a nil check.
	ErrNilCheck = errors.New("validation: nil check function")

	// ErrNilAction is the fault recorded when a step is given a nil action.
	ErrNilAction = errors.New("validation: nil action function")
)

// PanicError is the fault recorded when a check, action or onFail callback panics.
type PanicError struct {
	Value any
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("validation: step panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
