package picker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

const (
	maxItemsPerColumn = 5
	columnSpacing     = 4
)

// listDirectory returns the sorted subdirectories and regular files of path.
// Symlinks are classified by their target; broken links are skipped.
func listDirectory(path string) (session.Listing, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return session.Listing{}, err
	}

	var listing session.Listing
	for _, entry := range entries {
		info, statErr := os.Stat(filepath.Join(path, entry.Name()))
		if statErr != nil {
			continue
		}
		switch {
		case info.IsDir():
			listing.Dirs = append(listing.Dirs, entry.Name())
		case info.Mode().IsRegular():
			listing.Files = append(listing.Files, entry.Name())
		}
	}
	sort.Strings(listing.Dirs)
	sort.Strings(listing.Files)
	return listing, nil
}

func (s *service) renderListing(current string, listing session.Listing, listErr error) {
	s.println("\n" + ui.HeaderColor(fmt.Sprintf("--- Current Location: %s ---", current)))

	if listErr != nil {
		switch {
		case errors.Is(listErr, fs.ErrPermission):
			s.println(ui.ErrorColor(fmt.Sprintf("  [Permission Denied to list contents of: %s]", current)))
		case errors.Is(listErr, fs.ErrNotExist):
			s.println(ui.ErrorColor(fmt.Sprintf("  [Directory not found: %s]", current)))
		default:
			s.println(ui.ErrorColor(fmt.Sprintf("  [Could not list contents of: %s: %v]", current, listErr)))
		}
		return
	}

	s.println(ui.DirColor("Subdirectories:"))
	if len(listing.Dirs) == 0 {
		s.println(ui.DetailColor("  (No subdirectories)"))
	} else {
		for _, line := range formatColumns(listing.Dirs, "", string(filepath.Separator)) {
			s.println(line)
		}
	}

	s.println("\n" + ui.FileColor("Files:"))
	if len(listing.Files) == 0 {
		s.println(ui.DetailColor("  (No files)"))
	} else {
		for _, line := range formatColumns(listing.Files, "f", "") {
			s.println(line)
		}
	}
}

/*
formatColumns numbers items from 1 and lays them out top-to-bottom, then
left-to-right, with at most maxItemsPerColumn rows. Every cell is padded to
the widest cell plus columnSpacing; trailing spaces are trimmed.
*/
func formatColumns(items []string, prefix, suffix string) []string {
	total := len(items)
	if total == 0 {
		return nil
	}

	cells := make([]string, total)
	for i, name := range items {
		cells[i] = fmt.Sprintf("%s%d. %s%s", prefix, i+1, name, suffix)
	}

	if total <= maxItemsPerColumn {
		lines := make([]string, total)
		for i, cell := range cells {
			lines[i] = "  " + cell
		}
		return lines
	}

	maxWidth := 0
	for _, cell := range cells {
		if w := runewidth.StringWidth(cell); w > maxWidth {
			maxWidth = w
		}
	}

	numColumns := ceilDiv(total, maxItemsPerColumn)
	numRows := ceilDiv(total, numColumns)

	lines := make([]string, 0, numRows)
	for r := 0; r < numRows; r++ {
		var sb strings.Builder
		for c := 0; c < numColumns; c++ {
			index := r + c*numRows
			if index < total {
				sb.WriteString(runewidth.FillRight(cells[index], maxWidth+columnSpacing))
			}
		}
		lines = append(lines, "  "+strings.TrimRight(sb.String(), " "))
	}
	return lines
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (s *service) printHelp(mode session.Mode) {
	lines := []string{
		"\n--- Path Picker Help ---",
		"  <num>   : Navigate into the numbered subdirectory.",
	}
	if mode == session.ModeFile {
		lines = append(lines,
			"  f<num>  : Select the numbered file (e.g., 'f1', 'f2').",
			"  s       : Select the current directory (containing these files).")
	} else {
		lines = append(lines, "  s       : Select the current directory.")
	}
	lines = append(lines,
		"  u or .. : Go to the parent directory.",
		"  save <A>: Save the current browsed directory with alias <A>.",
		"  goto <A>: Jump to the directory saved with alias <A>.",
		"  list    : List all saved aliases and their paths.",
		"  pwd     : Print the current browsed directory (full path).",
		"  q       : Quit the picker without selection.",
		"  h       : Show this help message.",
		"--------------------------",
	)
	for _, line := range lines {
		s.println(ui.DetailColor(line))
	}
}

/*
PrintAliases renders every stored alias as a table, sorted by name. With
verbose set each path is checked and tagged [DIR], [FILE] or
[INVALID/NOT FOUND]; plain values are tagged [VALUE].
*/
func PrintAliases(out io.Writer, store ports.AliasStore, verbose bool) {
	aliases := store.Aliases()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No paths saved yet."))
		return
	}

	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	header := []string{"Alias", "Value"}
	if verbose {
		header = append(header, "Status")
	}

	fmt.Fprintln(out, ui.HeaderColor("\n--- Saved Paths ---"))
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	for _, name := range names {
		value := aliases[name]
		row := []string{ui.AliasColor(name), value.AsString()}
		if verbose {
			row = append(row, aliasStatus(value.AsString()))
		}
		table.Append(row)
	}
	table.Render()

	if last := store.LastBrowsedPath(); last != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Last browsed location: %s", last)))
	}
}

func aliasStatus(value string) string {
	info, err := os.Stat(value)
	switch {
	case err == nil && info.IsDir():
		return "[DIR]"
	case err == nil:
		return "[FILE]"
	case strings.ContainsRune(value, filepath.Separator):
		return "[INVALID/NOT FOUND]"
	default:
		return "[VALUE]"
	}
}
