// Package textenc decodes bytes of unknown quality into printable text.
package textenc

import (
	"golang.org/x/text/encoding/unicode"
)

// Lossy decodes b as UTF-8, replacing every invalid sequence with U+FFFD.
func Lossy(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// The UTF-8 decoder substitutes instead of failing; keep the raw bytes if that ever changes.
		return string(b)
	}
	return string(decoded)
}
