package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// OSProcessRunner implements the ProcessRunner interface by starting the executable directly.
type OSProcessRunner struct{}

// NewOSProcessRunner creates a new OSProcessRunner.
func NewOSProcessRunner() ports.ProcessRunner {
	return &OSProcessRunner{}
}

// Run starts path with args, waits for it, and returns the captured stdout and stderr.
// A non-zero exit is not an error: its code is returned and err stays nil.
func (r *OSProcessRunner) Run(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outBuf.Bytes(), errBuf.Bytes(), exitErr.ExitCode(), nil
		}
		return outBuf.Bytes(), errBuf.Bytes(), -1, fmt.Errorf("running %s: %w", path, err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), 0, nil
}
