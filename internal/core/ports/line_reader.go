package ports

import (
	"errors"
	"fmt"
)

// ErrInputCancelled is returned when the user aborts a prompt.
var ErrInputCancelled = errors.New("input cancelled")

// Both wrap ErrInputCancelled.
var (
	ErrEndOfInput  = fmt.Errorf("end of input: %w", ErrInputCancelled)
	ErrInterrupted = fmt.Errorf("interrupted: %w", ErrInputCancelled)
)

/*
LineReader supplies one line of user input per call. It is implemented by a
terminal reader for interactive use and by a scripted reader in tests.
*/
type LineReader interface {
	// ReadLine shows prompt and returns the entered line without its line ending.
	// An aborted prompt returns ErrEndOfInput or ErrInterrupted.
	ReadLine(prompt string) (string, error)
}
