package testutil

import (
	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// MockPickerService is a mock implementation of ports.PickerService.
// Without a Func set, GetValue and GetPath answer from Values and Paths and
// report a cancel for names missing from them.
type MockPickerService struct {
	GetValueFunc func(name, prompt string, kind alias.Kind, forceAsk bool) (alias.Value, bool)
	GetPathFunc  func(mode session.Mode, name, prompt, defaultStart string, forceAsk bool) (string, bool)
	PickFunc     func(mode session.Mode, prompt, start string) (string, bool)

	Values map[string]alias.Value
	Paths  map[string]string

	// Asked records every alias name requested, in order.
	Asked []string
	// Forced records the forceAsk flag per requested name.
	Forced map[string]bool
}

// NewMockPickerService creates a mock answering from the given maps.
func NewMockPickerService(paths map[string]string, values map[string]alias.Value) *MockPickerService {
	return &MockPickerService{
		Values: values,
		Paths:  paths,
		Forced: make(map[string]bool),
	}
}

func (m *MockPickerService) record(name string, forceAsk bool) {
	m.Asked = append(m.Asked, name)
	if m.Forced == nil {
		m.Forced = make(map[string]bool)
	}
	m.Forced[name] = forceAsk
}

// GetValue calls GetValueFunc or looks name up in Values.
func (m *MockPickerService) GetValue(name, prompt string, kind alias.Kind, forceAsk bool) (alias.Value, bool) {
	m.record(name, forceAsk)
	if m.GetValueFunc != nil {
		return m.GetValueFunc(name, prompt, kind, forceAsk)
	}
	v, ok := m.Values[name]
	if !ok {
		return alias.Value{}, false
	}
	typed, err := v.Coerce(kind)
	if err != nil {
		return alias.Value{}, false
	}
	return typed, true
}

// GetPath calls GetPathFunc or looks name up in Paths.
func (m *MockPickerService) GetPath(mode session.Mode, name, prompt, defaultStart string, forceAsk bool) (string, bool) {
	m.record(name, forceAsk)
	if m.GetPathFunc != nil {
		return m.GetPathFunc(mode, name, prompt, defaultStart, forceAsk)
	}
	p, ok := m.Paths[name]
	return p, ok
}

// Pick calls PickFunc, or cancels.
func (m *MockPickerService) Pick(mode session.Mode, prompt, start string) (string, bool) {
	if m.PickFunc != nil {
		return m.PickFunc(mode, prompt, start)
	}
	return "", false
}

var _ ports.PickerService = (*MockPickerService)(nil)
