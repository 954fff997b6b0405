package testutil

import (
	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// MockAliasStore is an in-memory implementation of ports.AliasStore.
// SaveFunc, when set, replaces the default no-op Save. SaveCalls counts every Save.
type MockAliasStore struct {
	Values    map[string]alias.Value
	LastPath  string
	FilePath  string
	LoadFunc  func() error
	SaveFunc  func() error
	SaveCalls int
}

// NewMockAliasStore creates an empty MockAliasStore.
func NewMockAliasStore() *MockAliasStore {
	return &MockAliasStore{Values: make(map[string]alias.Value), FilePath: "mock-state.json"}
}

func (m *MockAliasStore) Load() error {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil
}

func (m *MockAliasStore) Save() error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc()
	}
	return nil
}

func (m *MockAliasStore) Get(name string) (alias.Value, bool) {
	v, ok := m.Values[name]
	return v, ok
}

func (m *MockAliasStore) Set(name string, value alias.Value) {
	m.Values[name] = value
}

func (m *MockAliasStore) Delete(name string) bool {
	if _, ok := m.Values[name]; !ok {
		return false
	}
	delete(m.Values, name)
	return true
}

func (m *MockAliasStore) Aliases() map[string]alias.Value {
	out := make(map[string]alias.Value, len(m.Values))
	for k, v := range m.Values {
		out[k] = v
	}
	return out
}

func (m *MockAliasStore) LastBrowsedPath() string {
	return m.LastPath
}

func (m *MockAliasStore) SetLastBrowsedPath(path string) {
	m.LastPath = path
}

func (m *MockAliasStore) Path() string {
	return m.FilePath
}

var _ ports.AliasStore = (*MockAliasStore)(nil)
