package tessera

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates the app was built without a terminal backend.
	ErrNoBackend = errors.New("no backend configured")

	// ErrNoTree indicates the app was built without a layout tree.
	ErrNoTree = errors.New("no layout tree configured")
)

// OperationError describes a failure during a named application operation.
type OperationError struct {
	Op  string // operation name, e.g. "render", "init"
	Err error  // underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
