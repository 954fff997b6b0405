package ports

import "github.com/AntonioJCosta/pathpick/internal/core/domain/alias"

/*
AliasStore defines the contract for the persisted alias cache.
This is a driven port, implemented by a repository that owns the file format.
*/
type AliasStore interface {
	/*
	   Load replaces the in-memory state with the persisted one. On a read or
	   parse failure the store is left empty and the error describes why.
	*/
	Load() error

	// Save persists the current state, creating parent directories as needed.
	Save() error

	Get(name string) (alias.Value, bool)
	Set(name string, value alias.Value)
	// Delete removes an alias and reports whether it existed.
	Delete(name string) bool
	// Aliases returns a copy of every stored alias.
	Aliases() map[string]alias.Value

	LastBrowsedPath() string
	SetLastBrowsedPath(path string)

	// Path returns the location of the backing file.
	Path() string
}
