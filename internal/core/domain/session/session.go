/*
Package session defines the vocabulary of one interactive picker session:
what is being picked, what the current directory contains, and how the
session ended.
*/
package session

import "fmt"

// Mode selects what a session is allowed to pick.
type Mode string

const (
	ModeDirectory Mode = "directory"
	ModeFile      Mode = "file"
)

// ParseMode accepts "dir", "directory" or "file".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dir", "directory":
		return ModeDirectory, nil
	case "file":
		return ModeFile, nil
	}
	return "", fmt.Errorf("unknown pick mode %q (expected dir or file)", s)
}

// Listing is the sorted content of one directory.
type Listing struct {
	Dirs  []string
	Files []string
}

// Outcome is how a session ended. Cancelled sessions carry no path.
type Outcome struct {
	Path     string
	Selected bool
}

// Selected builds the outcome of a successful pick.
func Selected(path string) Outcome {
	return Outcome{Path: path, Selected: true}
}

// Cancelled is the outcome of a session the user quit.
func Cancelled() Outcome {
	return Outcome{}
}
