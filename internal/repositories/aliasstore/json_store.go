package aliasstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"go.uber.org/zap"
)

// DefaultStateFilename is created in the working directory unless another location is configured.
const DefaultStateFilename = ".path_picker_state.json"

// JSONStore keeps aliases in memory and persists them to a JSON file.
type JSONStore struct {
	filePath string
	state    alias.State
	logger   *zap.Logger
}

// NewJSONStore creates a store backed by filePath. An empty filePath selects
// DefaultStateFilename in the current working directory. The store starts
// empty; call Load to read the file.
func NewJSONStore(filePath string, logger *zap.Logger) (ports.AliasStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if filePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		filePath = filepath.Join(wd, DefaultStateFilename)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state file path %s: %w", filePath, err)
	}
	return &JSONStore{
		filePath: absPath,
		state:    alias.NewState(),
		logger:   logger,
	}, nil
}

// Load implements ports.AliasStore. A missing file is created with an empty state.
func (s *JSONStore) Load() error {
	s.state = alias.NewState()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("State file not found, creating it", zap.String("path", s.filePath))
			if saveErr := s.Save(); saveErr != nil {
				return fmt.Errorf("failed to create state file: %w", saveErr)
			}
			return nil
		}
		return fmt.Errorf("could not read state file %s: %w", s.filePath, err)
	}

	var loaded alias.State
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("could not decode JSON from %s: %w", s.filePath, err)
	}

	if loaded.SavedPaths != nil {
		s.state.SavedPaths = loaded.SavedPaths
	}
	if loaded.LastBrowsedPath != nil && isDir(*loaded.LastBrowsedPath) {
		last := *loaded.LastBrowsedPath
		s.state.LastBrowsedPath = &last
	}

	s.logger.Debug("State loaded",
		zap.String("path", s.filePath),
		zap.Int("aliases", len(s.state.SavedPaths)))
	return nil
}

// Save implements ports.AliasStore.
func (s *JSONStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.filePath, err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("could not write state file %s: %w", s.filePath, err)
	}
	s.logger.Debug("State saved", zap.String("path", s.filePath))
	return nil
}

func (s *JSONStore) Get(name string) (alias.Value, bool) {
	v, ok := s.state.SavedPaths[name]
	return v, ok
}

func (s *JSONStore) Set(name string, value alias.Value) {
	s.state.SavedPaths[name] = value
}

func (s *JSONStore) Delete(name string) bool {
	if _, ok := s.state.SavedPaths[name]; !ok {
		return false
	}
	delete(s.state.SavedPaths, name)
	return true
}

func (s *JSONStore) Aliases() map[string]alias.Value {
	out := make(map[string]alias.Value, len(s.state.SavedPaths))
	for k, v := range s.state.SavedPaths {
		out[k] = v
	}
	return out
}

func (s *JSONStore) LastBrowsedPath() string {
	if s.state.LastBrowsedPath == nil {
		return ""
	}
	return *s.state.LastBrowsedPath
}

func (s *JSONStore) SetLastBrowsedPath(path string) {
	if path == "" {
		s.state.LastBrowsedPath = nil
		return
	}
	s.state.LastBrowsedPath = &path
}

func (s *JSONStore) Path() string {
	return s.filePath
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
