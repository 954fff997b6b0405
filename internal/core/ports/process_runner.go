package ports

import "context"

// ProcessRunner defines an interface for running an external executable directly (no shell).
type ProcessRunner interface {
	// Run executes path with args and returns its captured output and exit code.
	// err is non-nil only when the process could not be started or waited on;
	// a non-zero exit is reported through exitCode.
	Run(ctx context.Context, path string, args []string) (stdout []byte, stderr []byte, exitCode int, err error)
}
