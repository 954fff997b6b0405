package ports

import (
	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
)

// PickerService defines the contract for acquiring cached or interactively chosen inputs.
type PickerService interface {
	// GetValue returns the cached value for name coerced to kind, or prompts for one.
	// ok is false when the user cancelled the prompt.
	GetValue(name, prompt string, kind alias.Kind, forceAsk bool) (value alias.Value, ok bool)

	// GetPath returns the cached path for name if it is still valid for mode,
	// otherwise runs an interactive session and caches the selection.
	GetPath(mode session.Mode, name, prompt, defaultStart string, forceAsk bool) (path string, ok bool)

	// Pick runs a session without caching its result. start may be a
	// directory or an alias naming one.
	Pick(mode session.Mode, prompt, start string) (path string, ok bool)
}
