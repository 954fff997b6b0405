package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// ProcessCall records one invocation of MockProcessRunner.Run.
type ProcessCall struct {
	Path string
	Args []string
}

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunFunc func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error)
	Calls   []ProcessCall
}

// Run records the call and delegates to RunFunc.
func (m *MockProcessRunner) Run(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
	m.Calls = append(m.Calls, ProcessCall{Path: path, Args: append([]string(nil), args...)})
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args)
	}
	return nil, nil, -1, errors.New("MockProcessRunner.RunFunc not implemented")
}

var _ ports.ProcessRunner = (*MockProcessRunner)(nil)
