package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrExecutableNotFound is returned when the optimizer executable cannot be started because it does not exist.
	ErrExecutableNotFound = errors.New("executable not found")
	// ErrMissingInputs is wrapped by the exit status of a run aborted for missing required inputs.
	ErrMissingInputs = errors.New("missing required inputs")
)

// ExitStatusError carries the exit code the program should end with.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}
