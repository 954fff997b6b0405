package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// MockHeaderCollector is a mock implementation of ports.HeaderCollector.
type MockHeaderCollector struct {
	CollectFunc func(root, output string) (ports.HeaderReport, error)
}

// Collect calls CollectFunc.
func (m *MockHeaderCollector) Collect(root, output string) (ports.HeaderReport, error) {
	if m.CollectFunc != nil {
		return m.CollectFunc(root, output)
	}
	return ports.HeaderReport{}, errors.New("MockHeaderCollector.CollectFunc not implemented")
}

var _ ports.HeaderCollector = (*MockHeaderCollector)(nil)
