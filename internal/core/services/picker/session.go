package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"go.uber.org/zap"
)

// browser is the Browsing state of one session.
type browser struct {
	svc     *service
	mode    session.Mode
	current string
	listing session.Listing
}

/*
runSession drives a browser from start until the user selects or quits.
Whatever directory the session ends in becomes the last browsed path, and
the store is persisted on every exit.
*/
func (s *service) runSession(mode session.Mode, prompt, start string) session.Outcome {
	b := &browser{svc: s, mode: mode, current: absPath(start)}
	s.logger.Debug("Picker session started", zap.String("mode", string(mode)), zap.String("start", b.current))

	s.printHelp(mode)
	s.println("\n" + ui.PromptColor(prompt))

	var outcome session.Outcome
	for {
		b.refresh()

		line, err := s.input.ReadLine(fmt.Sprintf("Enter command ('h' for help) [%s]> ", displayName(b.current)))
		if err != nil {
			switch {
			case errors.Is(err, ports.ErrInterrupted):
				s.println(ui.WarningColor("Picker interrupted. Quitting."))
			case errors.Is(err, ports.ErrInputCancelled):
				s.println(ui.WarningColor("Input ended. Quitting picker."))
			default:
				s.println(ui.ErrorColor(fmt.Sprintf("Error reading command: %v. Quitting picker.", err)))
			}
			outcome = session.Cancelled()
			break
		}

		var done bool
		if outcome, done = b.handle(line); done {
			break
		}
	}

	s.store.SetLastBrowsedPath(b.current)
	s.save()
	s.logger.Debug("Picker session finished",
		zap.Bool("selected", outcome.Selected),
		zap.String("path", outcome.Path),
		zap.String("lastBrowsed", b.current))
	return outcome
}

// refresh lists and renders the current directory. Listing failures are
// reported and leave an empty listing.
func (b *browser) refresh() {
	listing, err := listDirectory(b.current)
	if err != nil {
		b.svc.logger.Warn("Failed to list directory", zap.String("path", b.current), zap.Error(err))
	}
	b.listing = listing
	b.svc.renderListing(b.current, listing, err)
}

// handle applies one command line. done is true for terminal outcomes.
func (b *browser) handle(line string) (session.Outcome, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return session.Outcome{}, false
	}

	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch {
	case isDigits(command):
		b.enterDirectory(command)
	case b.mode == session.ModeFile && len(command) > 1 && command[0] == 'f' && isDigits(command[1:]):
		return b.selectFile(command[1:])
	case command == "s":
		if b.mode == session.ModeDirectory {
			b.svc.println(ui.SuccessColor(fmt.Sprintf("Selected directory: %s", b.current)))
		} else {
			b.svc.println(ui.SuccessColor(fmt.Sprintf("Selected current directory: %s", b.current)))
		}
		return session.Selected(b.current), true
	case command == "u" || command == ".." || command == "up":
		b.up()
	case command == "save":
		b.saveAlias(args)
	case command == "goto":
		b.gotoAlias(args)
	case command == "list":
		PrintAliases(b.svc.out, b.svc.store, false)
	case command == "pwd":
		b.svc.println(fmt.Sprintf("Current browsed directory: %s", b.current))
	case command == "q":
		b.svc.println(ui.WarningColor("Picker aborted."))
		return session.Cancelled(), true
	case command == "h":
		b.svc.printHelp(b.mode)
	default:
		b.svc.println(ui.ErrorColor(fmt.Sprintf("Unknown command: '%s'. Type 'h' for help.", line)))
	}
	return session.Outcome{}, false
}

func (b *browser) enterDirectory(number string) {
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > len(b.listing.Dirs) {
		b.svc.println(ui.ErrorColor("Invalid directory number."))
		return
	}
	b.moveTo(filepath.Join(b.current, b.listing.Dirs[n-1]))
}

func (b *browser) selectFile(number string) (session.Outcome, bool) {
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > len(b.listing.Files) {
		b.svc.println(ui.ErrorColor("Invalid file number."))
		return session.Outcome{}, false
	}
	selected := filepath.Join(b.current, b.listing.Files[n-1])
	b.svc.println(ui.SuccessColor(fmt.Sprintf("Selected file: %s", selected)))
	return session.Selected(selected), true
}

func (b *browser) up() {
	parent := filepath.Dir(b.current)
	if parent == b.current {
		b.svc.println(ui.WarningColor("Already at the top-most accessible directory."))
		return
	}
	b.moveTo(parent)
}

func (b *browser) saveAlias(args []string) {
	if len(args) == 0 {
		b.svc.println(ui.ErrorColor("Usage: save <alias>"))
		return
	}
	name := args[0]
	b.svc.store.Set(name, alias.String(b.current))
	b.svc.println(fmt.Sprintf("%s '%s'.",
		ui.SuccessColor(fmt.Sprintf("Saved current directory '%s' as alias", b.current)), ui.AliasColor(name)))
	b.svc.save()
}

func (b *browser) gotoAlias(args []string) {
	if len(args) == 0 {
		b.svc.println(ui.ErrorColor("Usage: goto <alias>"))
		return
	}
	name := args[0]
	saved, ok := b.svc.store.Get(name)
	if !ok {
		b.svc.println(ui.ErrorColor(fmt.Sprintf("Alias '%s' not found.", name)))
		return
	}
	target := saved.AsString()
	if !isDir(target) {
		b.svc.println(ui.ErrorColor(fmt.Sprintf("Path for alias '%s' ('%s') is not a directory. Cannot goto.", name, target)))
		return
	}
	b.moveTo(target)
	b.svc.println(fmt.Sprintf("%s '%s': %s", ui.InfoColor("Jumped to alias"), ui.AliasColor(name), b.current))
}

func (b *browser) moveTo(path string) {
	b.current = absPath(path)
	b.svc.logger.Debug("Picker moved", zap.String("path", b.current))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func displayName(path string) string {
	base := filepath.Base(path)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return path
	}
	return base
}
