package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"golang.org/x/term"
)

type lineResult struct {
	line string
	err  error
}

/*
Reader implements ports.LineReader over a byte stream, normally os.Stdin.
Lines are read by a single background goroutine so that an interrupt
(Ctrl+C) can abort the prompt that is waiting, instead of the whole program.
The interrupt handler is only installed while a prompt is pending.
*/
type Reader struct {
	out   io.Writer
	lines chan lineResult
}

// NewReader starts reading lines from in. Prompts are written to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		out:   out,
		lines: make(chan lineResult),
	}
	go r.scan(in)
	return r
}

func (r *Reader) scan(in io.Reader) {
	defer close(r.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		r.lines <- lineResult{line: strings.TrimRight(scanner.Text(), "\r")}
	}
	if err := scanner.Err(); err != nil {
		r.lines <- lineResult{err: err}
	}
}

// ReadLine implements ports.LineReader.
func (r *Reader) ReadLine(prompt string) (string, error) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	fmt.Fprint(r.out, prompt)

	select {
	case res, ok := <-r.lines:
		if !ok {
			fmt.Fprintln(r.out)
			return "", ports.ErrEndOfInput
		}
		if res.err != nil {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return res.line, nil
	case <-interrupts:
		fmt.Fprintln(r.out)
		return "", ports.ErrInterrupted
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
