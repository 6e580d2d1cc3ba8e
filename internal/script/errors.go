package script

import (
	"errors"
	"fmt"
)

// ErrHostClosed indicates the Lua host has been closed.
var ErrHostClosed = errors.New("script host closed")

// ScriptError wraps a Lua runtime or compile error.
type ScriptError struct {
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script error: %v", e.Err)
}

// Unwrap returns the underlying Lua error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
