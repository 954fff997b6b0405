package headers

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/textenc"
	"go.uber.org/zap"
)

// Delimiter separates a file's path from its content in the output.
const Delimiter = "============="

// ErrNotDirectory is returned when the collection root is not an existing directory.
var ErrNotDirectory = errors.New("the specified directory does not exist")

type collector struct {
	extensions []string
	logger     *zap.Logger
}

// NewCollector creates a header collector matching file names ending in one of extensions.
// It panics if extensions is empty.
func NewCollector(extensions []string, logger *zap.Logger) ports.HeaderCollector {
	if len(extensions) == 0 {
		panic("header extensions cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make([]string, len(extensions))
	copy(exts, extensions)
	return &collector{extensions: exts, logger: logger}
}

/*
Collect walks root in lexical order and writes one block per matching file
to output: the path, the delimiter line, the lossily decoded content and a
blank line. A file that cannot be read gets an inline error marker instead
of content. Only a bad root or an unwritable output fails the run.
*/
func (c *collector) Collect(root, output string) (ports.HeaderReport, error) {
	report := ports.HeaderReport{Output: output}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return report, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	outFile, err := os.Create(output)
	if err != nil {
		c.logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return report, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			c.logger.Error("Failed to close output file", zap.String("file", output), zap.Error(err))
		}
	}()

	outputAbs, _ := filepath.Abs(output)
	writer := bufio.NewWriter(outFile)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() || !c.matches(d.Name()) {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == outputAbs {
			return nil
		}

		if _, err := fmt.Fprintf(writer, "%s\n%s\n", path, Delimiter); err != nil {
			return err
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			c.logger.Warn("Failed to read header file", zap.String("filePath", path), zap.Error(readErr))
			report.Failed++
			_, err := fmt.Fprintf(writer, "[Error reading file: %v]\n\n", readErr)
			return err
		}

		report.Written++
		c.logger.Debug("Added header file", zap.String("filePath", path), zap.Int("contentSizeBytes", len(content)))
		_, err = writer.WriteString(textenc.Lossy(content) + "\n\n")
		return err
	})
	if walkErr != nil {
		return report, fmt.Errorf("failed to write output file: %w", walkErr)
	}

	if err := writer.Flush(); err != nil {
		return report, fmt.Errorf("failed to flush output: %w", err)
	}

	c.logger.Info("Header collection completed",
		zap.String("root", root),
		zap.String("output", output),
		zap.Int("written", report.Written),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (c *collector) matches(name string) bool {
	for _, ext := range c.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
