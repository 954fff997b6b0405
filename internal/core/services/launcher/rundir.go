package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// NextRunDir creates and returns base/r{N}, where N is one more than the
// highest number among existing r<digits> subdirectories of base (r1 when
// there are none). Files and other names are ignored.
func NextRunDir(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("failed to scan base output directory %s: %w", base, err)
	}

	highest := 0
	for _, entry := range entries {
		n, ok := runNumber(entry.Name())
		if !ok || n <= highest {
			continue
		}
		info, err := os.Stat(filepath.Join(base, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		highest = n
	}

	runDir := filepath.Join(base, "r"+strconv.Itoa(highest+1))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory %s: %w", runDir, err)
	}
	return runDir, nil
}

// runNumber parses names of the form r<digits>.
func runNumber(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'r' {
		return 0, false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
