package terminal

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

/*
ScriptedReader implements ports.LineReader from a fixed list of lines. Once
the script is exhausted every read reports ErrEndOfInput. Entries equal to
Interrupt simulate Ctrl+C at that prompt.
*/
type ScriptedReader struct {
	out   io.Writer
	lines []string
	pos   int
}

// Interrupt is a script entry that makes ReadLine return ports.ErrInterrupted.
const Interrupt = "\x03"

// NewScriptedReader returns a reader that replays lines. Prompts and the
// replayed answers are echoed to out when it is not nil.
func NewScriptedReader(out io.Writer, lines ...string) *ScriptedReader {
	return &ScriptedReader{out: out, lines: lines}
}

// ReadLine implements ports.LineReader.
func (s *ScriptedReader) ReadLine(prompt string) (string, error) {
	if s.out != nil {
		fmt.Fprint(s.out, prompt)
	}
	if s.pos >= len(s.lines) {
		return "", ports.ErrEndOfInput
	}
	line := s.lines[s.pos]
	s.pos++
	if line == Interrupt {
		return "", ports.ErrInterrupted
	}
	if s.out != nil {
		fmt.Fprintln(s.out, line)
	}
	return line, nil
}

// Remaining reports how many scripted lines have not been consumed.
func (s *ScriptedReader) Remaining() int {
	return len(s.lines) - s.pos
}
