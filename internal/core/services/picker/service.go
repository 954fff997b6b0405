package picker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"go.uber.org/zap"
)

type service struct {
	store     ports.AliasStore
	input     ports.LineReader
	out       io.Writer
	logger    *zap.Logger
	startPath string // configured fallback start directory, may be empty
}

// NewService creates a picker service.
// It panics if store, input or out is nil. A nil logger discards logs.
// startPath is the directory sessions start in when nothing better is known.
func NewService(store ports.AliasStore, input ports.LineReader, out io.Writer, logger *zap.Logger, startPath string) ports.PickerService {
	if store == nil {
		panic("alias store cannot be nil")
	}
	if input == nil {
		panic("line reader cannot be nil")
	}
	if out == nil {
		panic("output writer cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:     store,
		input:     input,
		out:       out,
		logger:    logger,
		startPath: startPath,
	}
}

// GetValue implements ports.PickerService.
func (s *service) GetValue(name, prompt string, kind alias.Kind, forceAsk bool) (alias.Value, bool) {
	if !forceAsk {
		if saved, ok := s.store.Get(name); ok {
			typed, err := saved.Coerce(kind)
			if err == nil {
				s.println(ui.InfoColor(fmt.Sprintf("Using saved value for '%s': %s", name, typed)))
				return typed, true
			}
			s.println(ui.WarningColor(fmt.Sprintf("Warning: Saved value for '%s' ('%s') is not a valid %s. Please re-enter.", name, saved, kind)))
		}
	}

	if prompt == "" {
		prompt = fmt.Sprintf("Enter the value for '%s'", name)
		if kind == alias.KindInt {
			prompt += " (must be an integer)"
		}
	}
	prompt = strings.TrimSpace(prompt)
	if !strings.HasSuffix(prompt, ":") {
		prompt += ":"
	}

	for {
		line, err := s.input.ReadLine(ui.PromptColor(prompt) + " ")
		if err != nil {
			s.println(ui.WarningColor("Input cancelled."))
			s.logger.Debug("Value prompt cancelled", zap.String("alias", name), zap.Error(err))
			return alias.Value{}, false
		}

		value := alias.String(line)
		if kind == alias.KindInt {
			n, convErr := strconv.Atoi(strings.TrimSpace(line))
			if convErr != nil {
				s.println(ui.ErrorColor("Invalid input. Please enter a valid integer."))
				continue
			}
			value = alias.Int(n)
		}

		s.store.Set(name, value)
		s.println(ui.SuccessColor(fmt.Sprintf("Value for '%s' set to: %s", name, value)))
		s.save()
		return value, true
	}
}

// GetPath implements ports.PickerService.
func (s *service) GetPath(mode session.Mode, name, prompt, defaultStart string, forceAsk bool) (string, bool) {
	if prompt == "" {
		prompt = fmt.Sprintf("Please select or confirm the %s for '%s':", mode, name)
	}

	if !forceAsk {
		if saved, ok := s.store.Get(name); ok {
			path := saved.AsString()
			if validFor(mode, path) {
				s.println(ui.InfoColor(fmt.Sprintf("Using saved %s path for '%s': %s", mode, name, path)))
				return path, true
			}
			s.println(ui.WarningColor(fmt.Sprintf("Saved path for '%s' ('%s') is no longer a valid %s. Please re-select.", name, path, mode)))
		}
	}

	selected, ok := s.pickValidated(mode, prompt, s.resolveStart(defaultStart))
	if !ok {
		return "", false
	}

	s.store.Set(name, alias.String(selected))
	s.println(ui.SuccessColor(fmt.Sprintf("%s path for '%s' set to: %s", capitalize(string(mode)), name, selected)))
	s.save()
	return selected, true
}

// Pick implements ports.PickerService.
func (s *service) Pick(mode session.Mode, prompt, start string) (string, bool) {
	if prompt == "" {
		prompt = fmt.Sprintf("Navigate to and select a %s:", mode)
	}
	return s.pickValidated(mode, prompt, s.resolveStart(start))
}

func (s *service) pickValidated(mode session.Mode, prompt, start string) (string, bool) {
	outcome := s.runSession(mode, prompt, start)
	if !outcome.Selected {
		return "", false
	}
	if !validFor(mode, outcome.Path) {
		s.println(ui.ErrorColor(fmt.Sprintf("Error: Selected item '%s' is not a valid %s. Please try again.", outcome.Path, mode)))
		return "", false
	}
	return outcome.Path, true
}

// resolveStart picks the session start directory: a directory alias, a
// literal directory, or the fallback chain. Aliases are only read, never written.
func (s *service) resolveStart(defaultStart string) string {
	if defaultStart == "" {
		return s.fallbackStart()
	}

	if saved, ok := s.store.Get(defaultStart); ok {
		candidate := saved.AsString()
		if isDir(candidate) {
			s.println(ui.InfoColor(fmt.Sprintf("Starting picker at saved alias '%s': %s", defaultStart, candidate)))
			return candidate
		}
		s.println(ui.WarningColor(fmt.Sprintf("Warning: Path for alias '%s' ('%s') is not a browsable directory.", defaultStart, candidate)))
	} else if isDir(defaultStart) {
		return absPath(defaultStart)
	} else {
		s.println(ui.WarningColor(fmt.Sprintf("Warning: Provided default start path '%s' is not a directory or known alias.", defaultStart)))
	}
	return s.fallbackStart()
}

// fallbackStart is the last browsed directory, then the configured start
// path, then the working directory.
func (s *service) fallbackStart() string {
	if last := s.store.LastBrowsedPath(); last != "" && isDir(last) {
		return last
	}
	if s.startPath != "" {
		if isDir(s.startPath) {
			return absPath(s.startPath)
		}
		s.println(ui.WarningColor(fmt.Sprintf("Warning: Configured start path '%s' is invalid.", s.startPath)))
	}
	return absPath(".")
}

func (s *service) save() {
	if err := s.store.Save(); err != nil {
		s.println(ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		s.logger.Warn("Failed to persist alias store", zap.String("path", s.store.Path()), zap.Error(err))
	}
}

func (s *service) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func validFor(mode session.Mode, path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if mode == session.ModeDirectory {
		return info.IsDir()
	}
	return info.Mode().IsRegular()
}

func isDir(path string) bool {
	return validFor(session.ModeDirectory, path)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
